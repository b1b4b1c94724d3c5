package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridworks-io/geoengine/internal/testutil/tlstest"
)

func TestBuildHTTP2ClientRequiresPaths(t *testing.T) {
	_, err := BuildHTTP2Client("", "", "")
	require.ErrorIs(t, err, ErrClientCertRequired)

	_, err = BuildHTTP2Client("cert.pem", "key.pem", "")
	require.ErrorIs(t, err, ErrCARequired)
}

func TestBuildHTTP2ClientLoadsCertificates(t *testing.T) {
	dir := t.TempDir()
	ca := tlstest.NewAuthority(t, dir)
	certPath, keyPath := ca.IssueClientCert(t, dir)

	client, err := BuildHTTP2Client(certPath, keyPath, ca.CAFile())
	require.NoError(t, err)
	require.NotNil(t, client.Transport)

	apiClient, err := NewClient(Config{HTTPClient: client})
	require.NoError(t, err)
	require.NotNil(t, apiClient)
}

func TestBuildHTTP2ClientMutualTLSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ca := tlstest.NewAuthority(t, dir)
	serverCertPath, serverKeyPath := ca.IssueServerCert(t, dir, []net.IP{net.IPv4(127, 0, 0, 1)})
	clientCertPath, clientKeyPath := ca.IssueClientCert(t, dir)

	serverCert, err := tls.LoadX509KeyPair(serverCertPath, serverKeyPath)
	require.NoError(t, err)
	caPEM, err := os.ReadFile(ca.CAFile())
	require.NoError(t, err)
	clientCAs := x509.NewCertPool()
	require.True(t, clientCAs.AppendCertsFromPEM(caPEM))

	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"users/demo/a"}}`))
	}))
	server.EnableHTTP2 = true
	server.TLS = &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientCAs:    clientCAs,
		ClientAuth:   tls.RequireAndVerifyClientCert,
	}
	server.StartTLS()
	t.Cleanup(server.Close)

	httpClient, err := BuildHTTP2Client(clientCertPath, clientKeyPath, ca.CAFile())
	require.NoError(t, err)

	client, err := NewClient(Config{
		APIBaseURL:  server.URL,
		TileBaseURL: server.URL,
		HTTPClient:  httpClient,
	})
	require.NoError(t, err)

	data, err := client.Info(context.Background(), "users/demo/a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"users/demo/a"}`, string(data))
}

func TestBuildHTTP2ClientRejectsBadCA(t *testing.T) {
	dir := t.TempDir()
	ca := tlstest.NewAuthority(t, dir)
	certPath, keyPath := ca.IssueClientCert(t, dir)

	bogus := filepath.Join(dir, "bogus.pem")
	require.NoError(t, os.WriteFile(bogus, []byte("not a certificate"), 0o644))

	_, err := BuildHTTP2Client(certPath, keyPath, bogus)
	require.ErrorIs(t, err, ErrCAInvalid)
}
