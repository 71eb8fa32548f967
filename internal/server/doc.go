// Package server implements an MCP (Model Context Protocol) server that hosts
// the channel adjustment node.
//
// The server plays the part of the node-graph host: it owns an image store,
// builds an invocation context for every node call and returns the node's
// output record.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_info: Dimensions, format, depth and file size
//   - image_dimensions: Width and height
//   - image_record: Metadata stored for node outputs
//
// Color Operations:
//   - image_sample_color: Color at a pixel
//   - image_sample_channels: Channel values at a pixel in any color mode
//
// Nodes:
//   - img_channel_adjust: Multiply or offset one channel in a chosen color mode
//
// # Invocation Context
//
// Each img_channel_adjust call runs with a fresh node id and the server's
// session id. is_intermediate and workflow are taken from the tool arguments.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
