package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-datatable/internal/domain/customer"
)

func noEnv(string) (string, bool) { return "", false }

func customersServer(t *testing.T, records []customer.Customer) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(records)
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"status":"success","data":%s}`, body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmdWithEnv(noEnv)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func records(n int) []customer.Customer {
	out := make([]customer.Customer, n)
	for i := range out {
		out[i] = customer.Customer{
			Sno:          int64(i + 1),
			CustomerName: fmt.Sprintf("Customer %02d", i+1),
			Location:     "Nairobi",
			CreatedDate:  fmt.Sprintf("2023-03-%02d", i+1),
			CreatedTime:  "09:00:00",
		}
	}
	return out
}

func TestRootCmd_URLFromEnv(t *testing.T) {
	cmd := NewRootCmdWithEnv(func(key string) (string, bool) {
		if key == apiURLEnv {
			return "http://api.example:8080", true
		}
		return "", false
	})

	flag := cmd.PersistentFlags().Lookup("url")
	require.NotNil(t, flag)
	assert.Equal(t, "http://api.example:8080", flag.DefValue)
}

func TestRootCmd_DefaultURL(t *testing.T) {
	cmd := NewRootCmdWithEnv(noEnv)
	assert.Equal(t, defaultAPIURL, cmd.PersistentFlags().Lookup("url").DefValue)
}

func TestListCmd_FirstPage(t *testing.T) {
	srv := customersServer(t, records(25))

	out, _, err := execute(t, "list", "--url", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Customer 01")
	assert.Contains(t, out, "Customer 20")
	assert.NotContains(t, out, "Customer 21")
	assert.Contains(t, out, "Page 1 of 2 (25 records)")
}

func TestListCmd_SearchSortAndPage(t *testing.T) {
	srv := customersServer(t, records(25))

	out, _, err := execute(t, "list", "--url", srv.URL, "--order", "desc", "--page", "2")
	require.NoError(t, err)

	// Newest first, so page 2 holds the five oldest records.
	assert.Contains(t, out, "Customer 05")
	assert.Contains(t, out, "Customer 01")
	assert.NotContains(t, out, "Customer 06")
	assert.Contains(t, out, "Page 2 of 2 (25 records)")

	out, _, err = execute(t, "list", "--url", srv.URL, "--search", "customer 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1 (10 records)")
}

func TestListCmd_PageBeyondEndStopsAtLast(t *testing.T) {
	srv := customersServer(t, records(5))

	out, _, err := execute(t, "list", "--url", srv.URL, "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1 (5 records)")
}

func TestListCmd_EmptyTable(t *testing.T) {
	srv := customersServer(t, nil)

	out, _, err := execute(t, "list", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No customers found.")
	assert.Contains(t, out, "Page 1 of 1 (0 records)")
}

func TestListCmd_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
	}))
	defer srv.Close()

	_, stderr, err := execute(t, "list", "--url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, stderr, "Error fetching data. Please try again.")
}

func TestListCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "sort field", args: []string{"--sort", "customer_name"}, want: "invalid sort field"},
		{name: "order", args: []string{"--order", "sideways"}, want: "invalid order"},
		{name: "page", args: []string{"--page", "0"}, want: "page must be >= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--url", "http://127.0.0.1:1"}, tt.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSubmitCmd_EchoesOnlySetFields(t *testing.T) {
	srv := customersServer(t, nil)

	out, _, err := execute(t, "submit", "--url", srv.URL, "--name", "Jane Doe", "--age", "31")
	require.NoError(t, err)

	var resp customer.CreateCustomerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.JSONEq(t, `"Jane Doe"`, string(resp.Data.CustomerName))
	assert.JSONEq(t, `31`, string(resp.Data.Age))
	assert.Empty(t, resp.Data.Location)
	assert.NotContains(t, out, "location")
}

func TestSubmitCmd_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Bad Request"}`))
	}))
	defer srv.Close()

	_, _, err := execute(t, "submit", "--url", srv.URL, "--name", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad Request")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	path := filepath.Join(t.TempDir(), "viewer.log")
	logger, err = newLogger(path)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())
	assert.FileExists(t, path)
}
