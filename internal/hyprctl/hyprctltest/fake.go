// Package hyprctltest provides an in-memory hyprctl for tests.
package hyprctltest

import "strings"

// Response is the scripted reply to one request.
type Response struct {
	Out string
	Err error
}

// Fake records every request and replies from Responses, keyed by the
// space joined arguments. Unscripted dispatches answer "ok", anything
// else answers empty output.
type Fake struct {
	Responses map[string]Response
	Calls     []string
}

func New() *Fake {
	return &Fake{Responses: make(map[string]Response)}
}

// On scripts the reply for a request such as "activewindow".
func (f *Fake) On(request string, out string, err error) *Fake {
	f.Responses[request] = Response{Out: out, Err: err}
	return f
}

func (f *Fake) Run(args ...string) (string, error) {
	request := strings.Join(args, " ")
	f.Calls = append(f.Calls, request)
	if r, ok := f.Responses[request]; ok {
		return r.Out, r.Err
	}
	if len(args) > 0 && args[0] == "dispatch" {
		return "ok", nil
	}
	return "", nil
}

// Dispatches returns the dispatch requests in the order they were made.
func (f *Fake) Dispatches() []string {
	var out []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c, "dispatch ") {
			out = append(out, c)
		}
	}
	return out
}
