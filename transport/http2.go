package transport

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
	"os"

	"golang.org/x/net/http2"
)

var (
	ErrClientCertRequired = errors.New("transport: client cert and key paths required")
	ErrCARequired         = errors.New("transport: ca cert path required")
	ErrCAInvalid          = errors.New("transport: ca cert not parseable")
)

// BuildHTTP2Client builds an HTTP/2 client with mutual TLS for private
// engine deployments. Pass the result as Config.HTTPClient.
func BuildHTTP2Client(certPath, keyPath, caPath string) (*http.Client, error) {
	if certPath == "" || keyPath == "" {
		return nil, ErrClientCertRequired
	}
	if caPath == "" {
		return nil, ErrCARequired
	}

	clientCert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, err
	}
	caCert, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, ErrCAInvalid
	}

	return &http.Client{
		Transport: &http2.Transport{
			TLSClientConfig: &tls.Config{
				Certificates: []tls.Certificate{clientCert},
				RootCAs:      caPool,
				MinVersion:   tls.VersionTLS12,
			},
		},
	}, nil
}
