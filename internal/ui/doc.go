// Package ui contains the application's components: the channel list, the
// content pane and the root view composing them.
//
// Each component has its own sealed message set (ChannelsMsg, ContentMsg,
// RootMsg) and satisfies component.Component for it. The root wraps leaf
// messages in ChannelsEnvelope and ContentEnvelope so every message routes to
// exactly one leaf.
package ui
