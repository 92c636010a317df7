package ocr_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/ocr"
	"recruitos/internal/port"
)

func testConfig() *config.OCRConfig {
	return &config.OCRConfig{APIKey: "test-key", Language: "eng"}
}

func TestRecognize_Success(t *testing.T) {
	var gotForm map[string]string
	var gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"base64Image":       r.PostFormValue("base64Image"),
			"language":          r.PostFormValue("language"),
			"filetype":          r.PostFormValue("filetype"),
			"OCREngine":         r.PostFormValue("OCREngine"),
			"detectOrientation": r.PostFormValue("detectOrientation"),
			"scale":             r.PostFormValue("scale"),
			"isTable":           r.PostFormValue("isTable"),
		}
		gotAPIKey = r.Header.Get("apikey")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ParsedResults": [
				{"ParsedText": "page one text"},
				{"ParsedText": "page two text"}
			],
			"OCRExitCode": 1,
			"IsErroredOnProcessing": false
		}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	payload := []byte("%PDF-fake")
	res, err := client.Recognize(context.Background(), port.OCRRequest{
		Payload:           payload,
		Filetype:          "PDF",
		Engine:            port.EngineAccurate,
		DetectOrientation: true,
		Scale:             true,
		TableMode:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, "page one text\npage two text", res.Text)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, port.EngineAccurate, res.Engine)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "eng", gotForm["language"])
	assert.Equal(t, "PDF", gotForm["filetype"])
	assert.Equal(t, "2", gotForm["OCREngine"])
	assert.Equal(t, "true", gotForm["detectOrientation"])
	assert.Equal(t, "true", gotForm["scale"])
	assert.Equal(t, "true", gotForm["isTable"])

	wantImage := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(payload)
	assert.Equal(t, wantImage, gotForm["base64Image"])
}

func TestRecognize_ImageMIME(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.True(t, strings.HasPrefix(r.PostFormValue("base64Image"), "data:image/png;base64,"))
		_, _ = w.Write([]byte(`{"ParsedResults":[{"ParsedText":"ok"}],"OCRExitCode":1}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{
		Payload:  []byte("png-bytes"),
		Filetype: "PNG",
		Engine:   port.EngineFast,
	})
	require.NoError(t, err)
}

func TestRecognize_ProviderExitError_StringMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"OCRExitCode":3,"IsErroredOnProcessing":true,"ErrorMessage":"file is corrupt"}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{Filetype: "PDF", Engine: port.EngineAccurate})

	var exitErr *domain.OCRExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Equal(t, "file is corrupt", exitErr.Message)
}

func TestRecognize_ProviderExitError_ArrayMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"OCRExitCode":4,"IsErroredOnProcessing":true,"ErrorMessage":["timeout","engine busy"]}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{Filetype: "PDF", Engine: port.EngineFast})

	var exitErr *domain.OCRExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.ExitCode)
	assert.Equal(t, "timeout; engine busy", exitErr.Message)
}

func TestRecognize_NonSuccessExitCodeWithoutErrorFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"OCRExitCode":2,"IsErroredOnProcessing":false}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{Filetype: "PNG", Engine: port.EngineFast})

	var exitErr *domain.OCRExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode)
	assert.Equal(t, "unknown provider error", exitErr.Message)
}

func TestRecognize_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{Filetype: "PDF", Engine: port.EngineAccurate})

	var apiErr *domain.OCRAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "forbidden")
}

func TestRecognize_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Recognize(context.Background(), port.OCRRequest{Filetype: "PDF", Engine: port.EngineAccurate})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding ocr response")
}

func TestRecognize_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"OCRExitCode":1}`))
	}))
	defer server.Close()

	client := ocr.NewClientWithEndpoint(testConfig(), server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Recognize(ctx, port.OCRRequest{Filetype: "PDF", Engine: port.EngineAccurate})
	require.Error(t, err)
}
