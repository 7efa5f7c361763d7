// Package mockapi holds testify mocks for the api package's collaborators.
package mockapi

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
)

// Doer is a mock of api.Doer.
type Doer struct {
	mock.Mock
}

func (d *Doer) Do(req *http.Request) (*http.Response, error) {
	args := d.Called(req)
	var resp *http.Response
	if v := args.Get(0); v != nil {
		resp = v.(*http.Response)
	}
	return resp, args.Error(1)
}

// Recorder is a mock of api.Recorder.
type Recorder struct {
	mock.Mock
}

func (r *Recorder) RecordRequest(method, endpoint string, status int, duration time.Duration, err error) {
	r.Called(method, endpoint, status, duration, err)
}
