package notify_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/infra/notify"
	"github.com/m-mizutani/gt"
)

func TestSlackNotifier(t *testing.T) {
	var method string
	var payload []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		payload, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n := notify.NewSlack(srv.URL)
	report := &model.CompatibilityReport{
		CheckID:     "check-9",
		Library:     "spring-core",
		FromVersion: "5.3.0",
		ToVersion:   "6.0.0",
		Candidates:  []model.CandidateFile{{Path: "App.java"}},
	}

	gt.NoError(t, n.CompatChecked(context.Background(), report))

	gt.Equal(t, method, http.MethodPost)
	gt.S(t, string(payload)).Contains("check-9")
	gt.S(t, string(payload)).Contains("spring-core")
}

func TestSlackNotifierServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := notify.NewSlack(srv.URL)
	err := n.CompatChecked(context.Background(), &model.CompatibilityReport{CheckID: "check-1"})
	gt.Error(t, err)
}
