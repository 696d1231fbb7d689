// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import "math/rand"

// API requests identify as the official Android app; the image CDN cares
// less about who asks, so raw media fetches rotate through ordinary browser
// user agents instead.
const (
	appUserAgent = "PixivAndroidApp/5.0.234 (Android 11; Pixel 5)"
	appOS        = "android"
	appOSVersion = "11"
	appVersion   = "5.0.234"
)

var chromeLinuxAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
}

var chromeMacAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
}

var chromeWindowsAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
}

const (
	platformLinux = iota
	platformMac
	platformWindows
	numPlatforms
)

// randomUserAgent returns a browser user agent from a random platform.
func randomUserAgent() string {
	var selectedAgents []string

	switch rand.Intn(numPlatforms) { // #nosec:G404 // Doesn't need to be crypto secure.
	case platformLinux:
		selectedAgents = chromeLinuxAgents
	case platformMac:
		selectedAgents = chromeMacAgents
	default:
		selectedAgents = chromeWindowsAgents
	}

	return selectedAgents[rand.Intn(len(selectedAgents))] // #nosec:G404 // Doesn't need to be crypto secure.
}
