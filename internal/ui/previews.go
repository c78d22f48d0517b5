package ui

import "noted/internal/preview"

// Previews lists every component that can be launched stand-alone.
func Previews() []preview.Entry {
	return []preview.Entry{
		preview.For[RootMsg](&RootView{}),
		preview.For[ChannelsMsg](&ChannelsView{}),
		preview.For[ContentMsg](&ContentView{}),
	}
}
