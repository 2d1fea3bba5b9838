package main

import (
	"net/http"
	"os"
	"time"

	httpadapter "github.com/razeenr05/GenVis/internal/adapters/http"
	"github.com/razeenr05/GenVis/internal/adapters/integrations"
	"github.com/razeenr05/GenVis/internal/adapters/llm"
	memstore "github.com/razeenr05/GenVis/internal/adapters/storage/memory"
	"github.com/razeenr05/GenVis/internal/app/activity"
	"github.com/razeenr05/GenVis/internal/app/workflow"
	"github.com/razeenr05/GenVis/internal/config"
	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
)

func main() {
	cfg := config.Load()
	log := observability.Logger()

	// Choose between mock and the hosted model by ENV (useful for dev).
	// The real client itself degrades to the mock result when the key is
	// missing or the endpoint misbehaves.
	var llmClient domain.LLMClient
	if cfg.UseMockLLM {
		log.Info("using mock LLM client")
		llmClient = llm.NewMockClient()
	} else {
		log.Info("using Nemotron LLM client", "model", cfg.NvidiaModel)
		llmClient = llm.NewNemotronClient(cfg.NvidiaAPIKey, cfg.NvidiaAPIBase, cfg.NvidiaModel)
	}

	session := memstore.NewSessionStore(time.Now())
	tracker := activity.NewTracker(integrations.DefaultChannel)

	svc := workflow.NewService(llmClient, session, tracker)

	handler := httpadapter.NewServer(
		svc,
		tracker,
		integrations.NewMockJiraClient(),
		integrations.NewMockSlackClient(integrations.DefaultChannel),
	)

	addr := ":" + cfg.Port
	log.Info("GenVis API listening", "addr", addr, "session_id", session.ID())
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
