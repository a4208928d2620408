package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/localstore"
	"github.com/meikuraledutech/flow/render"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app       *fiber.App
	doc       *flow.Document
	sessions  *flow.Sessions
	templates flow.TemplateStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	doc := flow.NewDocument()
	sessions := flow.NewSessions()
	templates := localstore.New(filepath.Join(t.TempDir(), "templates.json"))
	return &testEnv{
		app:       newApp(doc, sessions, render.NewRegistry(), templates),
		doc:       doc,
		sessions:  sessions,
		templates: templates,
	}
}

func (e *testEnv) request(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestCreateNodes(t *testing.T) {
	t.Run("trigger then reply, newest first", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.request(t, "POST", "/flow/nodes/trigger",
			`{"type":"Direct Message","platforms":["Facebook"]}`)
		assert.Equal(t, 201, resp.StatusCode)

		resp = env.request(t, "POST", "/flow/nodes/reply",
			`{"input":"Hi","position":{"x":120,"y":40}}`)
		assert.Equal(t, 201, resp.StatusCode)

		nodes := env.doc.Nodes()
		require.Len(t, nodes, 2)
		assert.Equal(t, flow.KindAction, nodes[0].Kind)
		assert.Equal(t, flow.Position{X: 120, Y: 40}, nodes[0].Position)
		assert.Equal(t, flow.KindTrigger, nodes[1].Kind)
	})

	t.Run("trigger without platforms is 422", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.request(t, "POST", "/flow/nodes/trigger",
			`{"type":"Direct Message","platforms":[]}`)

		assert.Equal(t, 422, resp.StatusCode)
		assert.Equal(t, 0, env.doc.Len())
	})

	t.Run("email validation errors are distinct", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.request(t, "POST", "/flow/nodes/email",
			`{"to":"a@b.co","subject":"hi"}`)
		assert.Equal(t, 422, resp.StatusCode)
		var missing map[string]string
		decode(t, resp, &missing)
		assert.Contains(t, missing["error"], "required")

		resp = env.request(t, "POST", "/flow/nodes/email",
			`{"to":"not-an-email","subject":"hi","message":"hello"}`)
		assert.Equal(t, 422, resp.StatusCode)
		var invalid map[string]string
		decode(t, resp, &invalid)
		assert.Contains(t, invalid["error"], "invalid email")

		assert.Equal(t, 0, env.doc.Len())
	})

	t.Run("template node needs a stored template", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.request(t, "POST", "/flow/nodes/template", `{}`)
		assert.Equal(t, 422, resp.StatusCode)

		resp = env.request(t, "POST", "/templates", `{"text":"Hello"}`)
		require.Equal(t, 201, resp.StatusCode)
		var created map[string]string
		decode(t, resp, &created)

		resp = env.request(t, "POST", "/flow/nodes/template",
			`{"templateId":"`+created["id"]+`"}`)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, 1, env.doc.Len())
	})
}

func TestEditProtocol(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/flow/nodes/reply", `{"input":"Hi"}`)
	require.Equal(t, 201, resp.StatusCode)
	var first map[string]string
	decode(t, resp, &first)

	resp = env.request(t, "POST", "/flow/nodes/reply", `{"input":"Other"}`)
	require.Equal(t, 201, resp.StatusCode)
	var second map[string]string
	decode(t, resp, &second)

	// Check out the first node for editing.
	resp = env.request(t, "POST", "/flow/nodes/"+first["id"]+"/edit", "")
	assert.Equal(t, 200, resp.StatusCode)
	var sess map[string]any
	decode(t, resp, &sess)
	assert.Equal(t, first["id"], sess["id"])
	assert.Equal(t, "Hi", sess["input"])

	// A concurrent edit of another node is rejected.
	resp = env.request(t, "POST", "/flow/nodes/"+second["id"]+"/edit", "")
	assert.Equal(t, 409, resp.StatusCode)

	// The active session is visible.
	resp = env.request(t, "GET", "/flow/session", "")
	assert.Equal(t, 200, resp.StatusCode)

	// Update through the form; session clears, list length holds.
	resp = env.request(t, "PUT", "/flow/nodes/"+first["id"], `{"input":"Hi there"}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 2, env.doc.Len())
	data := env.doc.Node(first["id"]).Data.Data.(flow.ReplyData)
	assert.Equal(t, "Hi there", data.Input)
	assert.Nil(t, env.sessions.Active())

	resp = env.request(t, "GET", "/flow/session", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCancelEdit(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/flow/nodes/email",
		`{"to":"a@b.co","subject":"hi","message":"hello"}`)
	require.Equal(t, 201, resp.StatusCode)
	var created map[string]string
	decode(t, resp, &created)

	resp = env.request(t, "POST", "/flow/nodes/"+created["id"]+"/edit", "")
	require.Equal(t, 200, resp.StatusCode)

	resp = env.request(t, "DELETE", "/flow/session", "")
	assert.Equal(t, 204, resp.StatusCode)
	assert.Nil(t, env.sessions.Active())

	data := env.doc.Node(created["id"]).Data.Data.(flow.EmailData)
	assert.Equal(t, "a@b.co", data.To, "cancel leaves the document untouched")
}

func TestNodeLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/flow/nodes/reply", `{"input":"Hi"}`)
	require.Equal(t, 201, resp.StatusCode)
	var created map[string]string
	decode(t, resp, &created)

	resp = env.request(t, "PUT", "/flow/nodes/"+created["id"]+"/position",
		`{"x":10,"y":20}`)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, flow.Position{X: 10, Y: 20}, env.doc.Node(created["id"]).Position)

	resp = env.request(t, "DELETE", "/flow/nodes/"+created["id"], "")
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, 0, env.doc.Len())

	resp = env.request(t, "PUT", "/flow/nodes/"+created["id"], `{"input":"x"}`)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestReadEndpoints(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, "POST", "/flow/nodes/trigger",
		`{"type":"Post Message","platforms":["Instagram"]}`)
	require.Equal(t, 201, resp.StatusCode)

	t.Run("document", func(t *testing.T) {
		resp := env.request(t, "GET", "/flow", "")
		assert.Equal(t, 200, resp.StatusCode)
		var body struct {
			Nodes []flow.Node `json:"nodes"`
			Edges []flow.Edge `json:"edges"`
		}
		decode(t, resp, &body)
		assert.Len(t, body.Nodes, 1)
		assert.Empty(t, body.Edges)
	})

	t.Run("render", func(t *testing.T) {
		resp := env.request(t, "GET", "/flow/render", "")
		assert.Equal(t, 200, resp.StatusCode)
		var summaries []render.Summary
		decode(t, resp, &summaries)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Post Message", summaries[0].Label)
	})

	t.Run("catalog", func(t *testing.T) {
		resp := env.request(t, "GET", "/catalog", "")
		assert.Equal(t, 200, resp.StatusCode)
		var catalog map[string]json.RawMessage
		decode(t, resp, &catalog)
		assert.Contains(t, catalog, "triggers")
		assert.Contains(t, catalog, "actions")
		assert.Contains(t, catalog, "platforms")
		assert.Contains(t, catalog, "ai")
	})
}

func TestTemplateEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/templates", `{"text":""}`)
	assert.Equal(t, 422, resp.StatusCode)

	resp = env.request(t, "POST", "/templates", `{"text":"Hello"}`)
	require.Equal(t, 201, resp.StatusCode)
	var created map[string]string
	decode(t, resp, &created)

	resp = env.request(t, "GET", "/templates", "")
	assert.Equal(t, 200, resp.StatusCode)
	var list []flow.Template
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Text)

	resp = env.request(t, "GET", "/templates/"+created["id"], "")
	assert.Equal(t, 200, resp.StatusCode)

	resp = env.request(t, "GET", "/templates/missing", "")
	assert.Equal(t, 404, resp.StatusCode)
}
