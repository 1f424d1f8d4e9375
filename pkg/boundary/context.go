package boundary

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

// maxCapturedBody bounds how much of a request body is copied into a log
// entry. Larger bodies are logged without a body snapshot.
const maxCapturedBody = 8 << 10

// RequestID returns the inbound X-Request-ID, or generates one.
func RequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

// CallerIP resolves the originating client address, preferring forwarding
// headers set by the edge proxy.
func CallerIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserID extracts the subject claim from a bearer token without verifying
// the signature. Verification is the auth middleware's job upstream; the
// value here is for audit logging only.
func UserID(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || raw == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Capture snapshots the request details attached to a log entry. The body is
// read and restored so the handler still sees it; only small JSON bodies are
// kept.
func Capture(r *http.Request) *faultlog.RequestContext {
	ctx := &faultlog.RequestContext{
		URL:       r.URL.String(),
		Method:    r.Method,
		IP:        CallerIP(r),
		UserAgent: r.UserAgent(),
		UserID:    UserID(r),
	}

	if query := r.URL.Query(); len(query) > 0 {
		ctx.Query = make(map[string]string, len(query))
		for k, v := range query {
			if len(v) > 0 {
				ctx.Query[k] = v[0]
			}
		}
	}

	ctx.Body = captureBody(r)
	return ctx
}

func captureBody(r *http.Request) any {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxCapturedBody+1))
	if err != nil {
		return nil
	}
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf), r.Body))
	if len(buf) > maxCapturedBody {
		return nil
	}

	var body any
	if err := json.Unmarshal(buf, &body); err != nil {
		return nil
	}
	return body
}
