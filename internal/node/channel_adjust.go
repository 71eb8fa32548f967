package node

import (
	"fmt"
	"image"

	"github.com/ironsheep/channel-adjust-mcp/internal/imaging"
)

// ChannelAdjustType is the node type hosts register the node under.
const ChannelAdjustType = "img_channel_adjust"

// Channel index bounds.
const (
	MinChannel = 0
	MaxChannel = 3
)

// Default parameter values.
const (
	DefaultChannel    = 0
	DefaultAdjustment = 1.0
)

// ImageField references an image managed by the host.
type ImageField struct {
	ImageName string `json:"image_name"`
}

// ImageOutput is the result of an image-producing node.
type ImageOutput struct {
	Image  ImageField `json:"image"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

// Descriptor is the metadata a host shows for a node type.
type Descriptor struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Describe returns the descriptor of the channel adjustment node.
func Describe() Descriptor {
	return Descriptor{
		Type:        ChannelAdjustType,
		Title:       "Adjust Image Channel",
		Description: "Adjusts any channel of an image in any format.",
		Category:    "image",
		Tags: []string{
			"image", "red", "green", "blue", "alpha", "cyan", "magenta", "yellow", "black",
			"hue", "saturation", "luminosity", "value",
			"RGB", "RGBA", "CYMK", "YCbCr", "LAB", "HSV", "HSL",
		},
	}
}

// ChannelAdjust converts an image into Mode, multiplies or offsets one
// channel, and stores the result as a new RGBA image.
//
// The node holds no state between invocations; the same value may be
// invoked repeatedly or concurrently.
type ChannelAdjust struct {
	Image      ImageField        `json:"image"`
	Mode       imaging.ColorMode `json:"mode"`
	Channel    int               `json:"channel"`
	Method     imaging.Method    `json:"method"`
	Adjustment float64           `json:"adjustment"`
}

// NewChannelAdjust returns a node for the named image with the default
// channel and adjustment.
func NewChannelAdjust(imageName string, mode imaging.ColorMode, method imaging.Method) *ChannelAdjust {
	return &ChannelAdjust{
		Image:      ImageField{ImageName: imageName},
		Mode:       mode,
		Channel:    DefaultChannel,
		Method:     method,
		Adjustment: DefaultAdjustment,
	}
}

// fourChannelModes are the modes whose fourth channel may be addressed.
// The comparison is by name and "CMYK" is not the spelling of any supported
// mode, so CYMK is limited to its first three channels.
var fourChannelModes = map[imaging.ColorMode]bool{
	imaging.ModeRGBA: true,
	"CMYK":           true,
}

// Validate checks every parameter against its allowed set or range.
func (n *ChannelAdjust) Validate() error {
	if n.Image.ImageName == "" {
		return fmt.Errorf("%w: image name is required", ErrInvalidInput)
	}
	if !n.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidInput, n.Mode)
	}
	if n.Channel < MinChannel || n.Channel > MaxChannel {
		return fmt.Errorf("%w: channel %d not in [%d,%d]", ErrInvalidInput, n.Channel, MinChannel, MaxChannel)
	}
	if !n.Method.Valid() {
		return fmt.Errorf("%w: method %q", ErrInvalidInput, n.Method)
	}
	if !imaging.ValidAdjustment(n.Adjustment) {
		return fmt.Errorf("%w: adjustment %v not in [%v,%v]", ErrInvalidInput,
			n.Adjustment, imaging.MinAdjustment, imaging.MaxAdjustment)
	}
	return nil
}

// EffectiveChannel returns the channel that will actually be adjusted.
// Requests past the third channel of a mode without an addressable fourth
// fall back to the third instead of failing.
func (n *ChannelAdjust) EffectiveChannel() int {
	if fourChannelModes[n.Mode] {
		return n.Channel
	}
	return min(n.Channel, 2)
}

// Invoke runs the adjustment against the host in ic.
//
// The source image is read once and never modified. Nothing is written to
// the host unless every step before persistence succeeds. Failures are
// wrapped in ErrRetrieval, ErrConversion or ErrPersistence and never retried.
func (n *ChannelAdjust) Invoke(ic *InvocationContext) (*ImageOutput, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if ic == nil || ic.Images == nil {
		return nil, fmt.Errorf("%w: invocation context has no image service", ErrInvalidInput)
	}

	src, err := ic.Images.GetImage(n.Image.ImageName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRetrieval, n.Image.ImageName, err)
	}

	out, err := n.adjust(src)
	if err != nil {
		return nil, err
	}

	rec, err := ic.Images.Create(CreateImageRequest{
		Image:          out,
		Origin:         OriginInternal,
		Category:       CategoryGeneral,
		NodeID:         ic.NodeID,
		SessionID:      ic.SessionID,
		IsIntermediate: ic.IsIntermediate,
		Workflow:       ic.Workflow,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &ImageOutput{
		Image:  ImageField{ImageName: rec.Name},
		Width:  rec.Width,
		Height: rec.Height,
	}, nil
}

// adjust performs the pure part of the invocation: convert, adjust one
// plane, convert back.
func (n *ChannelAdjust) adjust(src image.Image) (*image.NRGBA, error) {
	channel := n.EffectiveChannel()

	buf, err := imaging.FromImage(src, n.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: to %s: %w", ErrConversion, n.Mode, err)
	}

	plane, err := buf.Plane(channel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	if err := n.Method.Apply(plane, n.Adjustment); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := buf.SetPlane(channel, plane); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}

	out, err := buf.ToNRGBA()
	if err != nil {
		return nil, fmt.Errorf("%w: from %s: %w", ErrConversion, n.Mode, err)
	}
	return out, nil
}
