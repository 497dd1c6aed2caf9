package grammar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Check(t *testing.T) {
	text := "Some people argues that it is dangerous."

	tests := []struct {
		name       string
		statusCode int
		body       string
		want       []ErrorSpan
		wantError  bool
	}{
		{
			name:       "Matches map to spans with matched text extracted",
			statusCode: http.StatusOK,
			body: `{"matches": [
				{"offset": 12, "length": 6, "replacements": [{"value": "argue"}]}
			]}`,
			want: []ErrorSpan{
				{Offset: 12, Length: 6, Replacements: []string{"argue"}, MatchedText: "argues"},
			},
		},
		{
			name:       "Replacements are capped at three suggestions",
			statusCode: http.StatusOK,
			body: `{"matches": [
				{"offset": 0, "length": 4, "replacements": [
					{"value": "Many"}, {"value": "Most"}, {"value": "Few"}, {"value": "All"}
				]}
			]}`,
			want: []ErrorSpan{
				{Offset: 0, Length: 4, Replacements: []string{"Many", "Most", "Few"}, MatchedText: "Some"},
			},
		},
		{
			name:       "Out of bounds matches are skipped",
			statusCode: http.StatusOK,
			body: `{"matches": [
				{"offset": -1, "length": 3, "replacements": []},
				{"offset": 1000, "length": 3, "replacements": []},
				{"offset": 12, "length": 0, "replacements": []},
				{"offset": 12, "length": 6, "replacements": []}
			]}`,
			want: []ErrorSpan{
				{Offset: 12, Length: 6, Replacements: []string{}, MatchedText: "argues"},
			},
		},
		{
			name:       "No matches yields empty spans",
			statusCode: http.StatusOK,
			body:       `{"matches": []}`,
			want:       []ErrorSpan{},
		},
		{
			name:       "Server error is returned to the caller",
			statusCode: http.StatusInternalServerError,
			body:       `{"message": "internal error"}`,
			wantError:  true,
		},
		{
			name:       "Client error is returned to the caller",
			statusCode: http.StatusBadRequest,
			body:       `{"message": "text is missing"}`,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, "/v2/check", request.URL.Path)

				require.NoError(t, request.ParseForm())
				assert.Equal(t, text, request.PostFormValue("text"))
				assert.Equal(t, "en-US", request.PostFormValue("language"))
				assert.Equal(t, "user@example.com", request.PostFormValue("username"))
				assert.Equal(t, "secret-key", request.PostFormValue("apiKey"))
				assert.Equal(t, "picky", request.PostFormValue("level"))

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(tt.statusCode)
				_, _ = writer.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("user@example.com", "secret-key", server.URL)
			defer func() {
				_ = client.Close()
			}()

			got, err := client.Check(context.Background(), text)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// LanguageTool reports offsets in characters; spans must come back
// byte-denominated so splicing after multibyte runes stays aligned.
func TestClient_Check_MultibyteText(t *testing.T) {
	text := "The café is wrong — really."

	tests := []struct {
		name string
		body string
		want []ErrorSpan
	}{
		{
			name: "Match after a multibyte rune shifts to byte offsets",
			// "is" is at character offset 9, byte offset 10 ("é" is 2 bytes).
			body: `{"matches": [{"offset": 9, "length": 2, "replacements": [{"value": "are"}]}]}`,
			want: []ErrorSpan{
				{Offset: 10, Length: 2, Replacements: []string{"are"}, MatchedText: "is"},
			},
		},
		{
			name: "Match ending at the last character stays in bounds",
			// "really." is 7 characters ending at the final character.
			body: `{"matches": [{"offset": 20, "length": 7, "replacements": []}]}`,
			want: []ErrorSpan{
				{Offset: 23, Length: 7, Replacements: []string{}, MatchedText: "really."},
			},
		},
		{
			name: "Character bounds are checked, not byte bounds",
			// Character offset 27 is one past the end even though the text
			// is 30 bytes long.
			body: `{"matches": [{"offset": 26, "length": 2, "replacements": []}]}`,
			want: []ErrorSpan{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.Header().Set("Content-Type", "application/json")
				_, _ = writer.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("", "", server.URL)
			defer func() {
				_ = client.Close()
			}()

			got, err := client.Check(context.Background(), text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_CheckBestEffort(t *testing.T) {
	t.Run("Successful check reports availability", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"matches": [{"offset": 0, "length": 3, "replacements": []}]}`))
		}))
		defer server.Close()

		client := NewClient("", "", server.URL)
		defer func() {
			_ = client.Close()
		}()

		report := client.CheckBestEffort(context.Background(), "bad text")
		assert.True(t, report.Available)
		assert.Len(t, report.Matches, 1)
	})

	t.Run("Server failure degrades to unavailable report", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("", "", server.URL)
		defer func() {
			_ = client.Close()
		}()

		report := client.CheckBestEffort(context.Background(), "bad text")
		assert.False(t, report.Available)
		assert.Empty(t, report.Matches)
	})

	t.Run("Canceled context degrades to unavailable report", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient("", "", server.URL)
		defer func() {
			_ = client.Close()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()

		report := client.CheckBestEffort(ctx, "bad text")
		assert.False(t, report.Available)
	})
}
