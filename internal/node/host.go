package node

import (
	"image"
	"time"
)

// ResourceOrigin records where an image came from.
type ResourceOrigin string

const (
	// OriginInternal marks images produced by nodes.
	OriginInternal ResourceOrigin = "internal"
	// OriginExternal marks images supplied by users or other systems.
	OriginExternal ResourceOrigin = "external"
)

// ImageCategory groups stored images by purpose.
type ImageCategory string

const (
	CategoryGeneral ImageCategory = "general"
	CategoryMask    ImageCategory = "mask"
	CategoryControl ImageCategory = "control"
	CategoryUser    ImageCategory = "user"
	CategoryOther   ImageCategory = "other"
)

// CreateImageRequest carries a finished image and the metadata the host
// stores alongside it.
type CreateImageRequest struct {
	Image          image.Image
	Origin         ResourceOrigin
	Category       ImageCategory
	NodeID         string
	SessionID      string
	IsIntermediate bool
	Workflow       string
}

// ImageRecord describes an image persisted by the host.
type ImageRecord struct {
	Name           string         `json:"image_name"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	Origin         ResourceOrigin `json:"image_origin"`
	Category       ImageCategory  `json:"image_category"`
	NodeID         string         `json:"node_id,omitempty"`
	SessionID      string         `json:"session_id,omitempty"`
	IsIntermediate bool           `json:"is_intermediate"`
	Workflow       string         `json:"workflow,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ImageService is the host's image capability: fetch an image by name and
// persist a new one.
type ImageService interface {
	GetImage(name string) (image.Image, error)
	Create(req CreateImageRequest) (*ImageRecord, error)
}

// InvocationContext is what the host hands a node for a single invocation.
type InvocationContext struct {
	Images ImageService

	// NodeID identifies the node instance within the graph.
	NodeID string

	// SessionID identifies the graph execution the invocation belongs to.
	SessionID string

	// IsIntermediate marks outputs the host may garbage-collect once the
	// graph finishes.
	IsIntermediate bool

	// Workflow is the serialized workflow descriptor, if any.
	Workflow string
}
