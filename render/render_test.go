package render

import (
	"testing"

	"github.com/meikuraledutech/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triggerNode() flow.Node {
	return flow.Node{
		ID:   "t1",
		Kind: flow.KindTrigger,
		Data: flow.Payload{
			Option: flow.Option{Label: "Direct Message", Icon: "message-square"},
			Data: flow.TriggerData{
				Type:      flow.TypeDirectMessage,
				Platforms: []flow.Platform{{Label: "Facebook", Icon: "facebook"}},
			},
		},
	}
}

func TestRegistrySummary(t *testing.T) {
	registry := NewRegistry()

	t.Run("trigger shows sub-type and platform chips", func(t *testing.T) {
		s, err := registry.Summary(triggerNode())

		require.NoError(t, err)
		assert.Equal(t, "Direct Message", s.Label)
		assert.Equal(t, []string{"Direct Message"}, s.Lines)
		require.Len(t, s.Platforms, 1)
		assert.Equal(t, "Facebook", s.Platforms[0].Label)
	})

	t.Run("plain reply shows its text", func(t *testing.T) {
		s, err := registry.Summary(flow.Node{
			ID:   "n1",
			Kind: flow.KindAction,
			Data: flow.Payload{
				Option: flow.Option{Label: "Reply", Icon: "mail"},
				Data:   flow.ReplyData{Input: "Hi"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Hi"}, s.Lines)
	})

	t.Run("AI reply names the provider", func(t *testing.T) {
		model := flow.AIModels[1]
		s, err := registry.Summary(flow.Node{
			ID:   "n2",
			Kind: flow.KindAction,
			Data: flow.Payload{
				Option: flow.Option{Label: "Reply", Icon: "mail"},
				Data:   flow.ReplyData{AIActive: true, Model: &model, Input: "pitch"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "AI reply via Google Gemini", s.Lines[0])
	})

	t.Run("email shows recipient and subject", func(t *testing.T) {
		s, err := registry.Summary(flow.Node{
			ID:   "n3",
			Kind: flow.KindAction,
			Data: flow.Payload{
				Option: flow.Option{Label: "Email", Icon: "send"},
				Data:   flow.EmailData{To: "a@b.co", Subject: "hello", Message: "..."},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"To: a@b.co", "hello"}, s.Lines)
	})

	t.Run("unknown kind fails the lookup", func(t *testing.T) {
		_, err := registry.Summary(flow.Node{ID: "x", Kind: "mystery"})

		assert.ErrorIs(t, err, ErrUnknownNodeType)
	})

	t.Run("summaries render in document order", func(t *testing.T) {
		nodes := []flow.Node{
			triggerNode(),
			{
				ID:   "n1",
				Kind: flow.KindAction,
				Data: flow.Payload{
					Option: flow.Option{Label: "Reply", Icon: "mail"},
					Data:   flow.ReplyData{Input: "Hi"},
				},
			},
		}

		out, err := registry.Summaries(nodes)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "t1", out[0].ID)
		assert.Equal(t, "n1", out[1].ID)
	})
}

func TestEditRequest(t *testing.T) {
	t.Run("rebuilds the form-shaped session", func(t *testing.T) {
		sess, err := EditRequest(triggerNode())

		require.NoError(t, err)
		assert.Equal(t, "t1", sess.NodeID)
		assert.True(t, sess.IsTrigger)
		assert.Equal(t, "Direct Message", sess.Option.Label)
		data, ok := sess.Data.(flow.TriggerData)
		require.True(t, ok)
		assert.Len(t, data.Platforms, 1)
	})

	t.Run("node without payload is rejected", func(t *testing.T) {
		_, err := EditRequest(flow.Node{ID: "x", Kind: flow.KindAction})

		assert.ErrorIs(t, err, flow.ErrUnknownDataType)
	})
}
