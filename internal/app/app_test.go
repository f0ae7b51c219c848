package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/handlers"
	"blogapi/internal/routes"
	"blogapi/internal/services"
	"blogapi/internal/testutil"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	closed bool
}

func (f *fakeStorage) Ping(context.Context) error { return nil }
func (f *fakeStorage) Close(context.Context) error {
	f.closed = true
	return nil
}

func TestServer_StartAndShutdown(t *testing.T) {
	mem := testutil.NewMemStore()
	storage := &fakeStorage{}
	router := mux.NewRouter()
	routes.InitRoutes(router,
		handlers.NewAuthorHandler(services.NewAuthorService(mem.Authors())),
		handlers.NewBlogPostHandler(services.NewBlogPostService(mem.Posts(), mem.Authors())),
		handlers.NewHealthHandler(storage),
	)

	srv := NewServer(&config.Config{Port: "0"}, router, storage)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve не завершился после Shutdown")
	}
	assert.True(t, storage.closed)
}
