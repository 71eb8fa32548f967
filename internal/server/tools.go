package server

import (
	"github.com/ironsheep/channel-adjust-mcp/internal/imaging"
	"github.com/ironsheep/channel-adjust-mcp/internal/node"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func imageNameProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Image file name inside the server's image directory",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	modes := make([]string, 0, len(imaging.Modes()))
	for _, m := range imaging.Modes() {
		modes = append(modes, string(m))
	}
	methods := make([]string, 0, len(imaging.Methods()))
	for _, m := range imaging.Methods() {
		methods = append(methods, string(m))
	}

	desc := node.Describe()

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_info",
			Description: "Get the dimensions, format, color depth and file size of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": imageNameProperty(),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": imageNameProperty(),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_record",
			Description: "Get the origin, category and execution ids recorded for an image created by a node.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": imageNameProperty(),
				},
				"required": []string{"name"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": imageNameProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"name", "x", "y"},
			},
		},
		{
			Name:        "image_sample_channels",
			Description: "Convert an image into a color mode and read every channel value (0-255) at a pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": imageNameProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        modes,
						"description": "The color mode to convert to before sampling",
					},
					"x": map[string]interface{}{"type": "integer"},
					"y": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"name", "mode", "x", "y"},
			},
		},

		// Nodes
		{
			Name:        desc.Type,
			Description: desc.Title + ": " + desc.Description + " The result is stored as a new RGBA image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": map[string]interface{}{
						"type":        "object",
						"description": "The image to adjust",
						"properties": map[string]interface{}{
							"image_name": imageNameProperty(),
						},
						"required": []string{"image_name"},
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        modes,
						"description": "The color mode to convert to before adjusting",
					},
					"channel": map[string]interface{}{
						"type":        "integer",
						"minimum":     node.MinChannel,
						"maximum":     node.MaxChannel,
						"default":     node.DefaultChannel,
						"description": "Which channel to adjust",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        methods,
						"description": "The type of adjustment to perform",
					},
					"adjustment": map[string]interface{}{
						"type":        "number",
						"minimum":     imaging.MinAdjustment,
						"maximum":     imaging.MaxAdjustment,
						"default":     node.DefaultAdjustment,
						"description": "The amount to adjust the channel by",
					},
					"is_intermediate": map[string]interface{}{
						"type":        "boolean",
						"default":     false,
						"description": "Mark the output as an intermediate result",
					},
					"workflow": map[string]interface{}{
						"type":        "object",
						"description": "Optional workflow descriptor stored with the output",
					},
				},
				"required": []string{"image", "mode", "method"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
