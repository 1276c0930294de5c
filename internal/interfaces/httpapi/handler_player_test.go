package httpapi

import (
	"net/http"
	"testing"
)

func TestMatchPlayer(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, "/player/matchPlayer?playerId=11")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}

	content := contentObject(t, body)
	if got, _ := content["Name"].(string); got != "Bukayo Saka" {
		t.Fatalf("unexpected Name: %v", content["Name"])
	}
	if got, _ := content["teamName"].(string); got != "Arsenal" {
		t.Fatalf("unexpected teamName: %v", content["teamName"])
	}
	if got, _ := content["teamColor"].(string); got != "#EF0107" {
		t.Fatalf("unexpected teamColor: %v", content["teamColor"])
	}
	if got, _ := content["playerImage"].(string); got != "null" {
		t.Fatalf("unexpected playerImage: %v", content["playerImage"])
	}
	if got, _ := content["playerBirth"].(string); got != "2001-09-05" {
		t.Fatalf("unexpected playerBirth: %v", content["playerBirth"])
	}
	if got, _ := content["appearances"].(float64); got != 35 {
		t.Fatalf("unexpected appearances: %v", content["appearances"])
	}
	if got, _ := content["touches_percentile"].(float64); got != 88 {
		t.Fatalf("unexpected touches_percentile: %v", content["touches_percentile"])
	}
}

func TestMatchPlayer_NoStatRow(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, "/player/matchPlayer?playerId=41")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}

	content := contentObject(t, body)
	if got, _ := content["Name"].(string); got != "Myles Lewis-Skelly" {
		t.Fatalf("unexpected Name: %v", content["Name"])
	}
	if got, _ := content["teamName"].(string); got != "" {
		t.Fatalf("expected empty teamName, got %v", content["teamName"])
	}
	if got, _ := content["goals_percentile"].(float64); got != 0 {
		t.Fatalf("expected zero percentile, got %v", content["goals_percentile"])
	}
}

func TestMatchPlayer_UnknownPlayer(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, "/player/matchPlayer?playerId=9999")
	if code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
	if got, _ := body["success"].(bool); got {
		t.Fatalf("expected success=false")
	}
}

func TestMatchPlayer_MissingParam(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, "/player/matchPlayer")
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", code)
	}
	if got, _ := body["message"].(string); got != "playerId 파라미터가 필요합니다." {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestMatchPlayer_MalformedParam(t *testing.T) {
	router := newTestRouter(t)

	code, _ := doRequest(t, router, "/player/matchPlayer?playerId=abc")
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", code)
	}
}
