// Package httpclient provides a configurable HTTP client with built-in
// authentication, multipart uploads, typed error classification, and
// optional retry.
//
// The transcription and analysis clients are built on it:
//
//	client, _ := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.openai.com/v1",
//	    Timeout: 2 * time.Minute,
//	    Auth:    httpclient.BearerAuth(apiKey),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/audio/transcriptions",
//	    Body:   &httpclient.MultipartBody{...},
//	})
//
// Retry is disabled unless Config.Retry is set; per-chunk retry policy
// belongs to the pipeline, not the transport.
package httpclient
