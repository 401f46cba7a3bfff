package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     string
		contains []string
		wantErr  error
		anyErr   bool
	}{
		{
			name: "plain text digest",
			body: "  This bill directs the Department of Health and Human Services to expand Medicaid coverage.  ",
			want: "This bill directs the Department of Health and Human Services to expand Medicaid coverage.",
		},
		{
			name: "text with inline markup",
			body: "<b>Summary:</b> Requires hospitals &amp; clinics to publish prices for common procedures annually.",
			want: "Summary: Requires hospitals & clinics to publish prices for common procedures annually.",
		},
		{
			name:    "short body",
			body:    "No digest available.",
			wantErr: ErrNoSummary,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: ErrNoSummary,
		},
		{
			name: "html page",
			body: `<!DOCTYPE html>
				<html>
				<head><title>Bill Digest H2</title></head>
				<body>
					<article>
						<h1>House Bill 2 Digest</h1>
						<p>House Bill 2 would modernize the state Medicaid program and reinvest savings in rural hospitals.</p>
						<p>It also creates a workforce fund for nurses and behavioral health providers in underserved counties.</p>
					</article>
				</body>
				</html>`,
			contains: []string{"modernize the state Medicaid program", "workforce fund"},
		},
		{
			name:    "html page without text",
			body:   `<!DOCTYPE html><html><body><p>Not found</p></body></html>`,
			anyErr: true,
		},
	}

	e := NewDigestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(tt.body, "https://webservices.ncleg.gov/BillDigests/2025/H2")
			if tt.anyErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			assert.NotContains(t, got, "<")
		})
	}
}

func TestIsHTMLPage(t *testing.T) {
	assert.True(t, isHTMLPage("<!DOCTYPE html><html></html>"))
	assert.True(t, isHTMLPage("\n  <HTML lang=en>"))
	assert.False(t, isHTMLPage("plain text with <b>bold</b>"))
	assert.False(t, isHTMLPage(strings.Repeat("x", 600)+"<html>"))
}
