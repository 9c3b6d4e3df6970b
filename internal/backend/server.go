package backend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/models"
)

// Server is the bundled demo backend. It speaks the same wire protocol as
// the production assistant service but classifies with keyword heuristics,
// so the front end can be driven end to end without real infrastructure.
type Server struct {
	router   *chi.Mux
	store    *MemoryStore
	logger   *zap.Logger
	upgrader websocket.Upgrader

	clientsMu sync.Mutex
	clients   map[string]*websocket.Conn
}

func NewServer(cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		router:  r,
		store:   NewMemoryStore(40),
		logger:  logger,
		clients: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/session", s.handleSession)
	s.router.Post("/api/process", s.handleProcess)
	s.router.Get("/api/accounts", s.handleAccounts)
	s.router.Get("/api/accounts/{id}/balance", s.handleBalance)
	s.router.Get("/api/accounts/{id}/transactions", s.handleTransactions)
	s.router.Get("/api/routes", s.handleRoutes)
	s.router.Get("/ws/{clientID}", s.handleSocket)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	s.store.Create(id)
	s.writeJSON(w, http.StatusOK, map[string]string{"session_id": id})
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"accounts": demoAccounts()})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, a := range demoAccounts() {
		if a.ID == id {
			s.writeJSON(w, http.StatusOK, demoBalance(a))
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "unknown account")
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	txns := demoTransactions(id)
	if txns == nil {
		s.writeError(w, http.StatusNotFound, "unknown account")
		return
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		if limit < len(txns) {
			txns = txns[:limit]
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"transactions": txns})
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"routes": routeCatalog()})
}

type processRequest struct {
	Query     string `json:"query"`
	UIContext string `json:"ui_context"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.SessionID != "" {
		s.store.Record(req.SessionID, req.Query)
	}
	s.writeJSON(w, http.StatusOK, Classify(req.Query))
}

// Classify maps a query to the wire response the real service would send.
func Classify(query string) models.ProcessResponse {
	intent := DetectIntent(query)
	if intent.ID == "" {
		return models.ProcessResponse{
			Status:  "ok",
			Message: "I can help with account balances, transfers, and bill pay. What would you like to do?",
		}
	}
	resp := models.ProcessResponse{
		Status:     "ok",
		Intent:     intent.ID,
		Confidence: intent.Confidence,
		Entities:   ExtractEntities(query),
	}
	switch intent.ID {
	case "accounts.balance.check":
		resp.Message = "Here is what I found for your accounts."
		resp.UIAssistance = &models.UIAssistance{Type: "navigation"}
	case "transfers.internal.execute":
		resp.Message = "Let's set up that transfer."
		resp.UIAssistance = &models.UIAssistance{Type: "navigation", RoutePath: "/banking/transfers"}
	case "transfers.wire.initiate":
		resp.Message = "I started a wire transfer form for you."
		resp.UIAssistance = &models.UIAssistance{
			Type: "transaction_form",
			FormConfig: &models.DynamicFormConfig{
				FormID: "wire-transfer",
				Title:  "Wire Transfer",
				Fields: []models.FormField{
					{Name: "from_account", Label: "From account", Kind: "select", Required: true},
					{Name: "recipient", Label: "Recipient", Kind: "text", Placeholder: "Name or IBAN", Required: true},
					{Name: "amount", Label: "Amount", Kind: "money", Placeholder: "0.00", Required: true},
					{Name: "memo", Label: "Memo", Kind: "text"},
				},
			},
		}
	case "payments.bill.pay":
		resp.Message = "Taking you to bill pay."
		resp.UIAssistance = &models.UIAssistance{Type: "navigation", RoutePath: "/banking/payments/bills"}
	case "transactions.search":
		resp.Message = "Here is your recent activity."
	}
	return resp
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.clientsMu.Lock()
	if old, ok := s.clients[clientID]; ok {
		_ = old.Close()
	}
	s.clients[clientID] = conn
	s.clientsMu.Unlock()
	s.logger.Info("socket client connected", zap.String("client", clientID))

	// Drain inbound frames until the client goes away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(clientID, conn)
				return
			}
		}
	}()
}

func (s *Server) dropClient(clientID string, conn *websocket.Conn) {
	s.clientsMu.Lock()
	if cur, ok := s.clients[clientID]; ok && cur == conn {
		delete(s.clients, clientID)
	}
	s.clientsMu.Unlock()
	_ = conn.Close()
}

type pushFrame struct {
	Type string                 `json:"type"`
	Data models.ProcessResponse `json:"data"`
}

// Broadcast pushes a result frame to every connected socket client.
func (s *Server) Broadcast(resp models.ProcessResponse) {
	frame := pushFrame{Type: "result", Data: resp}
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for id, conn := range s.clients {
		if err := conn.WriteJSON(frame); err != nil {
			s.logger.Warn("socket push failed", zap.String("client", id), zap.Error(err))
			delete(s.clients, id)
			_ = conn.Close()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}
