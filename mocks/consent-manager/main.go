// Package main is a mock Consent Manager gateway for local HIU development.
// It accepts the gateway calls the HIU makes, answers 202, and fires the
// matching callback back at the HIU a moment later, the way the real gateway
// does. Decisions are canned: every consent request is acknowledged and every
// artefact fetch returns a GRANTED artefact.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	defaultPort   = "8000"
	defaultHIUURL = "http://localhost:8003"
)

var hiuURL = getEnv("HIU_URL", defaultHIUURL)

func main() {
	port := getEnv("PORT", defaultPort)

	http.HandleFunc("/sessions", handleSessions)
	http.HandleFunc("/consent-requests/init", handleConsentRequestInit)
	http.HandleFunc("/consents/fetch", handleConsentFetch)
	http.HandleFunc("/consents/hiu/on-notify", handleAccepted)
	http.HandleFunc("/health-information/cm/request", handleDataFlowRequest)
	http.HandleFunc("/patients/find", handlePatientFind)

	log.Printf("mock consent manager listening on :%s, calling back %s", port, hiuURL)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func handleSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"accessToken": fmt.Sprintf("mock-token-%d", time.Now().Unix()),
		"expiresIn":   600,
		"tokenType":   "bearer",
	})
}

func handleConsentRequestInit(w http.ResponseWriter, r *http.Request) {
	var request struct {
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)

	correlationID := r.Header.Get("X-CORRELATION-ID")
	go callback("/v0.5/consent-requests/on-init", correlationID, map[string]any{
		"resp":           map[string]string{"requestId": request.RequestID},
		"consentRequest": map[string]string{"id": fmt.Sprintf("consent-request-%d", time.Now().UnixNano())},
	})
}

func handleConsentFetch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		RequestID string `json:"requestId"`
		ConsentID string `json:"consentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)

	correlationID := r.Header.Get("X-CORRELATION-ID")
	go callback("/v0.5/consents/on-fetch", correlationID, map[string]any{
		"resp": map[string]string{"requestId": request.RequestID},
		"consent": map[string]any{
			"status": "GRANTED",
			"consentDetail": map[string]any{
				"consentId": request.ConsentID,
				"patient":   map[string]string{"id": "aruna@ncg"},
				"permission": map[string]any{
					"dateRange": map[string]string{
						"from": time.Now().AddDate(-1, 0, 0).UTC().Format(time.RFC3339),
						"to":   time.Now().UTC().Format(time.RFC3339),
					},
				},
			},
			"signature": "mock-signature",
		},
	})
}

func handleAccepted(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusAccepted)
}

func handleDataFlowRequest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"transactionId": fmt.Sprintf("txn-%d", time.Now().UnixNano()),
	})
}

func handlePatientFind(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Query struct {
			Patient struct {
				ID string `json:"id"`
			} `json:"patient"`
		} `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"patient": map[string]string{
			"id":   request.Query.Patient.ID,
			"name": "Aruna Sharma",
		},
	})
}

// callback posts a gateway callback to the HIU after a short delay so the
// 202 reaches the HIU before its own callback does.
func callback(path, correlationID string, payload map[string]any) {
	time.Sleep(200 * time.Millisecond)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("callback %s: %v", path, err)
		return
	}
	req, err := http.NewRequest(http.MethodPost, hiuURL+path, bytes.NewReader(body))
	if err != nil {
		log.Printf("callback %s: %v", path, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if correlationID != "" {
		req.Header.Set("X-CORRELATION-ID", correlationID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("callback %s: %v", path, err)
		return
	}
	defer resp.Body.Close()
	log.Printf("callback %s -> %d", path, resp.StatusCode)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
