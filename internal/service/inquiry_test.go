package service

import (
	"net/url"
	"strings"
	"testing"

	"storefront/internal/config"
)

func TestInquiryService_ComposeScenario(t *testing.T) {
	svc := NewInquiryService(config.InquiryConfig{BaseURL: "https://wa.me/", Phone: "917819049772"})

	inq := svc.Compose(InquiryRequest{Brand: "Apple", Model: "iPhone 12", Service: "Battery", Price: "49"})

	for _, want := range []string{"Brand: Apple", "Model: iPhone 12", "Service: Battery", "Price: 49"} {
		if !strings.Contains(inq.Message, want) {
			t.Fatalf("message missing %q:\n%s", want, inq.Message)
		}
	}
	if !strings.HasPrefix(inq.Message, "Hi Ashok Services, I am interested in:\n") {
		t.Fatalf("unexpected greeting: %q", inq.Message)
	}
	if !strings.HasSuffix(inq.Message, "\n\nIs this available?") {
		t.Fatalf("unexpected closing: %q", inq.Message)
	}

	const prefix = "https://wa.me/917819049772?text="
	if !strings.HasPrefix(inq.URL, prefix) {
		t.Fatalf("url = %q", inq.URL)
	}
	encoded := strings.TrimPrefix(inq.URL, prefix)
	if strings.ContainsAny(encoded, " +\n") {
		t.Fatalf("text not URI-component encoded: %q", encoded)
	}
	if !strings.Contains(encoded, "Hi%20Ashok%20Services") {
		t.Fatalf("spaces should be %%20: %q", encoded)
	}
	decoded, err := url.PathUnescape(encoded)
	if err != nil || decoded != inq.Message {
		t.Fatalf("round trip mismatch: %q (%v)", decoded, err)
	}
}

func TestInquiryService_EmptyFieldsAreNotValidated(t *testing.T) {
	svc := NewInquiryService(config.InquiryConfig{Phone: "1"})
	inq := svc.Compose(InquiryRequest{})
	if !strings.Contains(inq.Message, "- Brand: \n- Model: \n") {
		t.Fatalf("empty segments expected, got %q", inq.Message)
	}
	if !strings.HasPrefix(inq.URL, "https://wa.me/1?text=") {
		t.Fatalf("default base url not applied: %q", inq.URL)
	}
}

func TestEncodeURIComponent_PlusAndAmpersand(t *testing.T) {
	got := encodeURIComponent("a+b & c")
	if got != "a%2Bb%20%26%20c" {
		t.Fatalf("encodeURIComponent = %q", got)
	}
}

func TestEncodeURIComponent_KeepsUnreservedMarks(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(approx)", "(approx)"},
		{"it's 49!", "it's%2049!"},
		{"2*3", "2*3"},
		{"~a-b_c.d", "~a-b_c.d"},
		{"₹1,499", "%E2%82%B91%2C499"},
		{"a/b?c#d", "a%2Fb%3Fc%23d"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := encodeURIComponent(tc.in); got != tc.want {
				t.Fatalf("encodeURIComponent(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
