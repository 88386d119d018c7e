package core

import "strings"

type PageAction int

const (
	ActionRenderIndex PageAction = iota
	ActionRenderEntity
	ActionServeAsset
	ActionNotFound
)

const AssetsPrefix = "/assets/"

type PageDecision struct {
	Action    PageAction
	EntityID  string
	AssetPath string
}

// DecidePageAction maps a preview request path onto what should be rendered.
func DecidePageAction(requestPath string) PageDecision {
	p := NormalizePath(requestPath)

	if p == "/" || p == "/"+IndexPath || p == "/index" {
		return PageDecision{Action: ActionRenderIndex}
	}

	if rest, ok := strings.CutPrefix(p, AssetsPrefix); ok {
		if rest == "" || strings.Contains(rest, "..") {
			return PageDecision{Action: ActionNotFound}
		}
		return PageDecision{Action: ActionServeAsset, AssetPath: rest}
	}

	id := strings.TrimPrefix(p, "/")
	if id == "" || strings.Contains(id, "/") {
		return PageDecision{Action: ActionNotFound}
	}

	return PageDecision{Action: ActionRenderEntity, EntityID: id}
}
