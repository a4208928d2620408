package flow

// Option catalogs mirrored from the builder UI. Icons are renderer
// references the canvas resolves client-side; the store only carries names.
var (
	// TriggerOptions are the trigger sub-types offered by the sidebar.
	TriggerOptions = []Option{
		{Label: "Direct Message", Icon: "message-square"},
		{Label: "Post Message", Icon: "message-circle"},
		{Label: "Like Post", Icon: "hand-heart"},
		{Label: "Share Post", Icon: "share-2"},
	}

	// ActionOptions are the action node kinds offered by the sidebar.
	ActionOptions = []Option{
		{Label: "Reply", Icon: "mail"},
		{Label: "Email", Icon: "send"},
		{Label: "Template", Icon: "layout-template"},
	}

	// Platforms a trigger can listen on.
	Platforms = []Platform{
		{Label: "Facebook", Icon: "facebook"},
		{Label: "Instagram", Icon: "instagram"},
	}

	// AIModels selectable on an AI-active reply.
	AIModels = []AIModel{
		{
			Label: "Open AI",
			Image: "https://uxwing.com/wp-content/themes/uxwing/download/brands-and-social-media/chatgpt-icon.png",
		},
		{
			Label: "Google Gemini",
			Image: "https://uxwing.com/wp-content/themes/uxwing/download/brands-and-social-media/google-ai-studio-icon.png",
		},
	}
)

// triggerTypes maps trigger option labels to their payload type tags.
var triggerTypes = map[string]DataType{
	"Direct Message": TypeDirectMessage,
	"Post Message":   TypePostMessage,
	"Like Post":      TypeLikePost,
	"Share Post":     TypeSharePost,
}

// TriggerOption finds a trigger sub-type by label.
func TriggerOption(label string) (Option, bool) {
	return findOption(TriggerOptions, label)
}

// ActionOption finds an action option by label.
func ActionOption(label string) (Option, bool) {
	return findOption(ActionOptions, label)
}

// TriggerType resolves a trigger option label to its payload type tag.
func TriggerType(label string) (DataType, bool) {
	t, ok := triggerTypes[label]
	return t, ok
}

// PlatformByLabel finds a platform by label.
func PlatformByLabel(label string) (Platform, bool) {
	for _, p := range Platforms {
		if p.Label == label {
			return p, true
		}
	}
	return Platform{}, false
}

// AIModelByLabel finds an AI provider by label.
func AIModelByLabel(label string) (AIModel, bool) {
	for _, m := range AIModels {
		if m.Label == label {
			return m, true
		}
	}
	return AIModel{}, false
}

func findOption(options []Option, label string) (Option, bool) {
	for _, o := range options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}
