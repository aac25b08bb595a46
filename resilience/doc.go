// Package resilience provides retry with exponential backoff for outbound
// service calls.
//
// The transcription and analysis clients deliberately do not retry on
// their own; retry is a policy decision of the caller. Enable it through
// httpclient.Config.Retry when the embedding application wants it.
package resilience
