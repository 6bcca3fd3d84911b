// Package devcode builds clients for the Devcode-branded twin of the
// PayLane gateway. The API surface is identical; only the endpoint differs.
package devcode

import (
	paylane "github.com/amodliszewski/paylane-go"
)

// BaseURL is the production Devcode endpoint.
const BaseURL = "https://direct.devcode.pl/rest/"

// New builds a client pointed at the Devcode endpoint. Caller options run
// after the endpoint default, so WithBaseURL still overrides it.
func New(username, password string, opts ...paylane.Option) *paylane.Client {
	return paylane.New(username, password,
		append([]paylane.Option{paylane.WithBaseURL(BaseURL)}, opts...)...)
}
