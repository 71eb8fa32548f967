// Package node implements the "Adjust Image Channel" node for a node-graph
// image host.
//
// A host supplies an InvocationContext carrying its ImageService and the
// ambient execution metadata (node id, session id, intermediate flag,
// workflow). ChannelAdjust.Invoke reads the source image through the
// service, adjusts one channel in the requested color mode and asks the
// service to store the RGBA result.
//
// # Channel Limits
//
// Channel indices run from 0 to 3. Only RGBA accepts index 3; every other
// mode silently adjusts channel 2 instead. CYMK passes validation but always
// fails conversion, so invoking the node in that mode returns ErrConversion.
//
// # Error Handling
//
// Invoke returns errors wrapping one of ErrInvalidInput, ErrRetrieval,
// ErrConversion or ErrPersistence together with the underlying cause.
package node
