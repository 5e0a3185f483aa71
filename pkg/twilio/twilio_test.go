package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{FromPhone: "+15550100000"}); err == nil {
		t.Error("expected an error without credentials")
	}
	if _, err := New(Config{AccountSID: "AC123", AuthToken: "tok"}); err == nil {
		t.Error("expected an error without a from phone")
	}
}

func TestSendSMS(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		_ = r.ParseForm()
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer srv.Close()

	client, err := New(Config{
		AccountSID: "AC123",
		AuthToken:  "tok",
		FromPhone:  "+15550100000",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sid, err := client.SendSMS(context.Background(), "+919876543210", "Running 10 mins late")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sid != "SM123" {
		t.Errorf("sid = %q, want SM123", sid)
	}
	if gotPath != "/Accounts/AC123/Messages.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotUser != "AC123" || gotPass != "tok" {
		t.Errorf("basic auth = %q/%q", gotUser, gotPass)
	}
	if gotFrom != "+15550100000" || gotTo != "+919876543210" {
		t.Errorf("from/to = %q/%q", gotFrom, gotTo)
	}
	if gotBody != "Running 10 mins late" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestMakeCall(t *testing.T) {
	var gotPath, gotTwiml string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotTwiml = r.PostFormValue("Twiml")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"CA456","status":"queued"}`))
	}))
	defer srv.Close()

	client, err := New(Config{
		AccountSID: "AC123",
		AuthToken:  "tok",
		FromPhone:  "+15550100000",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sid, err := client.MakeCall(context.Background(), "+919876543210", "Meeting moved to 3 & 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sid != "CA456" {
		t.Errorf("sid = %q, want CA456", sid)
	}
	if gotPath != "/Accounts/AC123/Calls.json" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(gotTwiml, "<Say>Meeting moved to 3 &amp; 4</Say>") {
		t.Errorf("twiml = %q", gotTwiml)
	}
}

func TestSendSMS_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_code":21211,"error_message":"Invalid 'To' Phone Number"}`))
	}))
	defer srv.Close()

	client, err := New(Config{
		AccountSID: "AC123",
		AuthToken:  "tok",
		FromPhone:  "+15550100000",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.SendSMS(context.Background(), "bogus", "hi")
	if err == nil {
		t.Fatal("expected an error on 400")
	}
	if !strings.Contains(err.Error(), "Invalid 'To' Phone Number") {
		t.Errorf("error should carry the api message: %v", err)
	}
}
