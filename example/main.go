package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/forms"
	"github.com/meikuraledutech/flow/localstore"
	"github.com/meikuraledutech/flow/render"
)

func main() {
	ctx := context.Background()

	doc := flow.NewDocument()
	sessions := flow.NewSessions()
	registry := render.NewRegistry()
	templates := localstore.New(filepath.Join(os.TempDir(), "flow-example-templates.json"))

	// ── Create a trigger: Direct Message on Facebook ──────────────────
	trigger := forms.NewTriggerForm(doc, sessions)
	trigger.Open()
	if err := trigger.Select("Direct Message"); err != nil {
		log.Fatalf("select trigger: %v", err)
	}
	if err := trigger.TogglePlatform("Facebook"); err != nil {
		log.Fatalf("pick platform: %v", err)
	}
	triggerID, err := trigger.Submit()
	if err != nil {
		log.Fatalf("create trigger: %v", err)
	}
	fmt.Printf("trigger created: %s\n", triggerID)

	// ── Create a plain reply ──────────────────────────────────────────
	reply := forms.NewReplyForm(doc, sessions)
	reply.Open()
	if err := reply.Select("Reply"); err != nil {
		log.Fatalf("select reply: %v", err)
	}
	reply.SetInput("Hi")
	replyID, err := reply.Submit()
	if err != nil {
		log.Fatalf("create reply: %v", err)
	}
	fmt.Printf("reply created: %s (document has %d nodes, newest first)\n", replyID, doc.Len())

	// ── Edit the reply through the session protocol ───────────────────
	sess, err := render.EditRequest(*doc.Node(replyID))
	if err != nil {
		log.Fatalf("edit request: %v", err)
	}
	if err := sessions.Checkout(sess); err != nil {
		log.Fatalf("checkout: %v", err)
	}

	edit := forms.NewReplyForm(doc, sessions)
	if err := edit.Hydrate(&sess); err != nil {
		log.Fatalf("hydrate: %v", err)
	}
	edit.SetInput("Hi there")
	if _, err := edit.Submit(); err != nil {
		log.Fatalf("update reply: %v", err)
	}
	fmt.Printf("reply updated, session cleared: %v\n", sessions.Active() == nil)

	// ── Templates: draft one and hang a Template node on it ───────────
	tplForm := forms.NewTemplateForm(doc, sessions, templates)
	tplForm.Open()
	if err := tplForm.Select("Template"); err != nil {
		log.Fatalf("select template: %v", err)
	}
	tplForm.SetDraftText("Welcome aboard!")
	tplID, err := tplForm.CreateTemplate(ctx)
	if err != nil {
		log.Fatalf("create template: %v", err)
	}
	fmt.Printf("template stored: %s\n", tplID)
	if _, err := tplForm.Submit(); err != nil {
		log.Fatalf("create template node: %v", err)
	}

	// ── Render the document the way the canvas would ──────────────────
	summaries, err := registry.Summaries(doc.Nodes())
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println("\ncanvas summaries:")
	printJSON(summaries)

	fmt.Println("\ndocument:")
	printJSON(map[string]any{"nodes": doc.Nodes(), "edges": doc.Edges()})
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
