package rtc

import (
	"github.com/pion/webrtc/v4"

	"github.com/dkrasov/huddle/internal/config"
)

// ICEServers assembles the ICE configuration handed to clients. The relay
// never opens a PeerConnection itself; peers use this to build the direct
// media path after negotiating through us.
func ICEServers(cfg *config.Config) []webrtc.ICEServer {
	urls := cfg.StunURLs
	if len(urls) == 0 {
		urls = []string{"stun:stun.l.google.com:19302"}
	}
	servers := []webrtc.ICEServer{
		{URLs: urls},
	}
	if cfg.TurnURL != "" {
		servers = append(servers, webrtc.ICEServer{
			URLs:       []string{cfg.TurnURL},
			Username:   cfg.TurnUser,
			Credential: cfg.TurnPass,
		})
	}
	return servers
}
