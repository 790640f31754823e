// ABOUTME: Stream URL classification into a playback mode and the URL to open
// ABOUTME: RTSP (and anything unrecognized) is routed through the media backend's MJPEG endpoint

package stream

import "strings"

// Mode is the playback strategy for a stream URL.
type Mode string

const (
	ModeNone       Mode = ""
	ModeWowzaEmbed Mode = "wowza-embed"
	ModeEmbed      Mode = "embed"
	ModeHLS        Mode = "hls"
	ModeRTSP       Mode = "rtsp"
)

const (
	mjpegPath      = "/stream/mjpeg"
	wowzaEmbedHost = "embed.wowza.com"
)

// Source is a classified stream.
type Source struct {
	Mode Mode
	// Input is the trimmed URL as entered.
	Input string
	// URL is what the player opens.
	URL string
}

// Empty reports whether no stream is loaded.
func (s Source) Empty() bool { return s.Mode == ModeNone }

// Frames reports whether the source yields decodable frames for the viewport.
func (s Source) Frames() bool { return s.Mode == ModeRTSP }

// Classify maps a user-entered URL to a playback mode. Rules apply in order:
// Wowza embeds (first ".js" removed), then .m3u8 or http(s) URLs (embed when
// the URL mentions "embed", else hls), else rtsp via the media backend.
func Classify(raw, mediaBase string) Source {
	u := strings.TrimSpace(raw)
	if u == "" {
		return Source{}
	}

	if strings.Contains(u, wowzaEmbedHost) {
		return Source{Mode: ModeWowzaEmbed, Input: u, URL: strings.Replace(u, ".js", "", 1)}
	}

	if strings.Contains(u, ".m3u8") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://") {
		if !strings.Contains(u, "embed") {
			return Source{Mode: ModeHLS, Input: u, URL: u}
		}
		return Source{Mode: ModeEmbed, Input: u, URL: u}
	}

	return Source{Mode: ModeRTSP, Input: u, URL: MJPEGURL(mediaBase, u)}
}

// MJPEGURL is the media backend endpoint that transcodes rtspURL.
func MJPEGURL(mediaBase, rtspURL string) string {
	return strings.TrimRight(mediaBase, "/") + mjpegPath + "?url=" + EscapeComponent(rtspURL)
}

// EscapeComponent percent-encodes s leaving only A-Z a-z 0-9 and - _ . ! ~ * ' ( )
// unescaped, the set browsers keep in a URI component.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
