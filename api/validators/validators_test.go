package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

type createBody struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":-1}`))
	var body createBody
	err := DecodeJSONBody(req, &body)
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	details, ok := pkgerrors.As(err).Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details got %#v", pkgerrors.As(err).Details())
	}
	if details["name"] != "is required" || details["quantity"] != "must be at least 0" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Basil","colour":"green"}`))
	var body createBody
	if err := DecodeJSONBody(req, &body); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"abc":          "abc",
	}
	for header, want := range cases {
		got, err := BearerToken(header)
		if err != nil || got != want {
			t.Fatalf("BearerToken(%q) = %q, %v", header, got, err)
		}
	}
	if _, err := BearerToken("Bearer "); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken got %v", err)
	}
}

func TestParseQueryEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?status=Ready&sentiment=all", nil)

	status, err := ParseQueryEnum(req, "status", enums.ParseOrderStatus)
	if err != nil || status == nil || *status != enums.OrderStatusReady {
		t.Fatalf("expected ready got %v, %v", status, err)
	}
	sentiment, err := ParseQueryEnum(req, "sentiment", enums.ParseSentiment)
	if err != nil || sentiment != nil {
		t.Fatalf("expected no filter got %v, %v", sentiment, err)
	}

	bad := httptest.NewRequest(http.MethodGet, "/?status=lost", nil)
	if _, err := ParseQueryEnum(bad, "status", enums.ParseOrderStatus); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestParseQueryBool(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?active=true&broken=maybe", nil)
	if v, err := ParseQueryBool(req, "active", false); err != nil || !v {
		t.Fatalf("expected true got %v, %v", v, err)
	}
	if v, err := ParseQueryBool(req, "missing", true); err != nil || !v {
		t.Fatalf("expected default got %v, %v", v, err)
	}
	if _, err := ParseQueryBool(req, "broken", false); err == nil {
		t.Fatal("expected error for non-boolean")
	}
}

func TestSanitizeStringCapsRunes(t *testing.T) {
	if got := SanitizeString("  Crème brûlée  ", 0); got != "Crème brûlée" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
	if got := SanitizeString("Crème brûlée", 5); got != "Crème" {
		t.Fatalf("expected five runes, got %q", got)
	}
	if got := SanitizeString("ab cd", 3); got != "ab" {
		t.Fatalf("expected trailing space dropped after cut, got %q", got)
	}
}
