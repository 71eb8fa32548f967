package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/channel-adjust-mcp/internal/imaging"
	"github.com/ironsheep/channel-adjust-mcp/internal/node"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "img_channel_adjust").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_record":
		return s.handleImageRecord(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_channels":
		return s.handleImageSampleChannels(args)

	// Nodes
	case node.ChannelAdjustType:
		return s.handleChannelAdjust(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating missing arguments as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.store.Info(a.Name)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.store.Dimensions(a.Name)
}

func (s *Server) handleImageRecord(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.store.Record(a.Name)
}

// === Color Operation Handlers ===

type imageSampleArgs struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.GetImage(a.Name)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// ChannelSample is the result of image_sample_channels.
type ChannelSample struct {
	Mode     imaging.ColorMode `json:"mode"`
	X        int               `json:"x"`
	Y        int               `json:"y"`
	Channels []int             `json:"channels"`
}

func (s *Server) handleImageSampleChannels(args json.RawMessage) (interface{}, error) {
	var a imageSampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseColorMode(a.Mode)
	if err != nil {
		return nil, err
	}
	img, err := s.store.GetImage(a.Name)
	if err != nil {
		return nil, err
	}
	buf, err := imaging.FromImage(img, mode)
	if err != nil {
		return nil, err
	}
	px, err := imaging.SampleBuffer(buf, a.X, a.Y)
	if err != nil {
		return nil, err
	}

	// []uint8 would marshal as base64.
	channels := make([]int, len(px))
	for i, v := range px {
		channels[i] = int(v)
	}
	return &ChannelSample{Mode: mode, X: a.X, Y: a.Y, Channels: channels}, nil
}

// === Node Handlers ===

type channelAdjustArgs struct {
	Image          node.ImageField `json:"image"`
	Mode           string          `json:"mode"`
	Channel        *int            `json:"channel"`
	Method         string          `json:"method"`
	Adjustment     *float64        `json:"adjustment"`
	IsIntermediate bool            `json:"is_intermediate"`
	Workflow       json.RawMessage `json:"workflow"`
}

func (s *Server) handleChannelAdjust(args json.RawMessage) (interface{}, error) {
	var a channelAdjustArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	n := &node.ChannelAdjust{
		Image:      a.Image,
		Mode:       imaging.ColorMode(a.Mode),
		Channel:    node.DefaultChannel,
		Method:     imaging.Method(a.Method),
		Adjustment: node.DefaultAdjustment,
	}
	if a.Channel != nil {
		n.Channel = *a.Channel
	}
	if a.Adjustment != nil {
		n.Adjustment = *a.Adjustment
	}

	ic := &node.InvocationContext{
		Images:         s.store,
		NodeID:         s.newNodeID(),
		SessionID:      s.sessionID,
		IsIntermediate: a.IsIntermediate,
	}
	if len(a.Workflow) > 0 && string(a.Workflow) != "null" {
		ic.Workflow = string(a.Workflow)
	}

	if s.debug {
		log.Printf("Invoking %s node %s: image=%s mode=%s channel=%d method=%s adjustment=%v",
			node.ChannelAdjustType, ic.NodeID, n.Image.ImageName, n.Mode, n.Channel, n.Method, n.Adjustment)
	}

	return n.Invoke(ic)
}
