package qbo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/internal/mock"
	"github.com/greentech-painting/greenpush/models"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenProvider(ctrl)
	tokens.EXPECT().GetValidToken(gomock.Any(), false).Return("access-1", nil).AnyTimes()

	cfg := config.QBO{
		RealmID:        "realm-1",
		APIBaseURL:     baseURL,
		RequestTimeout: 5 * time.Second,
	}

	return NewClient(cfg, tokens, logger.Nop())
}

func TestGetCompanyInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/realm-1/companyinfo/1", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"CompanyInfo":{"CompanyName":"GreenTech Painting Sandbox","Country":"CA"}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	info, err := client.GetCompanyInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GreenTech Painting Sandbox", info.CompanyName)
}

func TestGetCompanyInfo_FaultMessageExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"Fault":{"Error":[{"Message":"Token expired","Detail":"...","code":"3200"}],"type":"AUTHENTICATION"}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	_, err := client.GetCompanyInfo(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Token expired", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestGetCompanyInfo_RawBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	_, err := client.GetCompanyInfo(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestGetCompanyInfo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := newTestClient(t, url)

	_, err := client.GetCompanyInfo(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Network error: get company info")
	assert.Zero(t, apiErr.StatusCode)
}

func TestMissingRealmID(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenProvider(ctrl)

	client := NewClient(config.QBO{APIBaseURL: "http://unused.invalid"}, tokens, logger.Nop())

	_, err := client.GetCompanyInfo(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "realm id is not configured", apiErr.Message)
}

func TestTokenFailureSurfacesAsAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenProvider(ctrl)
	tokens.EXPECT().GetValidToken(gomock.Any(), false).Return("", errors.New("refresh rejected"))

	cfg := config.QBO{RealmID: "realm-1", APIBaseURL: "http://unused.invalid"}
	client := NewClient(cfg, tokens, logger.Nop())

	_, err := client.GetCompanyInfo(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "obtain access token")
	assert.Contains(t, apiErr.Message, "refresh rejected")
}

func TestQueryCustomers_EscapesSingleQuotes(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"QueryResponse":{}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	customers, err := client.QueryCustomers(context.Background(), "O'Brien Homes")
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.Equal(t, `SELECT * FROM Customer WHERE DisplayName = 'O\'Brien Homes'`, gotQuery)
}

func TestQueryCustomers_ListingWhenNameEmpty(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"QueryResponse":{"Customer":[{"Id":"1","DisplayName":"A"},{"Id":"2","DisplayName":"B"}]}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	customers, err := client.QueryCustomers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, "SELECT * FROM Customer MAXRESULTS 100", gotQuery)
}

func TestGetOrCreateCustomer(t *testing.T) {
	t.Run("existing customer is reused", func(t *testing.T) {
		var createCalls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodPost {
				createCalls++
				w.Write([]byte(`{"Customer":{"Id":"new","DisplayName":"x"}}`))
				return
			}
			w.Write([]byte(`{"QueryResponse":{"Customer":[{"Id":"17","DisplayName":"Maple Ridge Properties"}]}}`))
		}))
		t.Cleanup(srv.Close)

		client := newTestClient(t, srv.URL)

		customer, err := client.GetOrCreateCustomer(context.Background(), "Maple Ridge Properties", "", "")
		require.NoError(t, err)
		assert.Equal(t, "17", customer.ID)
		assert.Zero(t, createCalls)
	})

	t.Run("missing customer is created", func(t *testing.T) {
		var created models.Customer
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodPost {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
				w.Write([]byte(`{"Customer":{"Id":"99","DisplayName":"New Co"}}`))
				return
			}
			w.Write([]byte(`{"QueryResponse":{}}`))
		}))
		t.Cleanup(srv.Close)

		client := newTestClient(t, srv.URL)

		customer, err := client.GetOrCreateCustomer(context.Background(), "New Co", "ap@newco.example", "")
		require.NoError(t, err)
		assert.Equal(t, "99", customer.ID)
		assert.Equal(t, "New Co", created.DisplayName)
		require.NotNil(t, created.PrimaryEmailAddr)
		assert.Equal(t, "ap@newco.example", created.PrimaryEmailAddr.Address)
		assert.Nil(t, created.PrimaryPhone)
	})
}

func TestCreateEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/company/realm-1/estimate", r.URL.Path)

		var payload models.EstimatePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "7", payload.CustomerRef.Value)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Estimate":{"Id":"321","DocNumber":"1007","TotalAmt":600}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	estimate, err := client.CreateEstimate(context.Background(), models.EstimatePayload{
		CustomerRef: models.Ref{Value: "7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "321", estimate.ID)
	assert.Equal(t, "1007", estimate.DocNumber)
	assert.Equal(t, 600.0, estimate.TotalAmt)
}

func TestGetEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/realm-1/estimate/321", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Estimate":{"Id":"321","DocNumber":"1007","TotalAmt":336,"TxnStatus":"Pending"}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	estimate, err := client.GetEstimate(context.Background(), "321")
	require.NoError(t, err)
	assert.Equal(t, "1007", estimate.DocNumber)
	assert.Equal(t, "Pending", estimate.TxnStatus)
}

func TestFetchEstimatePDF(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		pdfBytes := []byte("%PDF-1.4 fake")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/company/realm-1/estimate/321/pdf", r.URL.Path)
			assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "application/pdf")
			w.Write(pdfBytes)
		}))
		t.Cleanup(srv.Close)

		client := newTestClient(t, srv.URL)
		path := filepath.Join(t.TempDir(), "Estimate_1007.pdf")

		require.NoError(t, client.FetchEstimatePDF(context.Background(), "321", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, pdfBytes, data)
	})

	t.Run("remote failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		client := newTestClient(t, srv.URL)
		path := filepath.Join(t.TempDir(), "out.pdf")

		err := client.FetchEstimatePDF(context.Background(), "missing", path)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Failed to download PDF: 404", apiErr.Message)
		assert.NoFileExists(t, path)
	})
}

func TestQueryItems(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"QueryResponse":{"Item":[{"Id":"5","Name":"Interior wall paint","Type":"Service"}]}}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	items, err := client.QueryItems(context.Background(), "Interior wall paint")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "5", items[0].ID)
	assert.Equal(t, `SELECT * FROM Item WHERE Name = 'Interior wall paint'`, gotQuery)
}
