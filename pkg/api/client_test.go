package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsbank/obsctl/pkg/session"
)

func Test_LoginPersistsSession(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("POST", r.Method)
		req.Equal("/api/auth/signin", r.URL.Path)

		body := LoginRequest{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("alice", body.Username)

		json.NewEncoder(w).Encode(session.Session{
			ID:       7,
			Username: "alice",
			Email:    "alice@example.com",
			Roles:    []string{session.RoleBanker},
			Token:    "T1",
		})
	}))
	defer server.Close()

	store := testStore(t)
	client := NewClient(server.URL, store, nil)

	sess, err := client.Login("alice", "hunter22")
	req.NoError(err)
	req.NotNil(sess)
	assert.Equal(t, []string{session.RoleBanker}, sess.Roles)

	loaded := store.Load()
	req.NotNil(loaded)
	assert.Equal(t, sess, loaded)
}

func Test_LoginFailureClearsSession(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Bad credentials"})
	}))
	defer server.Close()

	store := testStore(t)
	require.NoError(t, store.Save(storedSession()))

	client := NewClient(server.URL, store, nil)

	_, err := client.Login("alice", "wrong")
	req.Error(err)
	assert.Equal(t, "Bad credentials", err.Error())
	assert.Nil(t, store.Load())
}

func Test_LogoutClearsEvenWhenRemoteFails(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := testStore(t)
	req.NoError(store.Save(storedSession()))

	client := NewClient(server.URL, store, nil)

	// signout failed remotely but the local session is gone regardless
	err := client.Logout()
	assert.Error(t, err)
	assert.Nil(t, store.Load())
}

func Test_LogoutClearsWhenServerUnreachable(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := testStore(t)
	req.NoError(store.Save(storedSession()))

	client := NewClient(server.URL, store, nil)

	err := client.Logout()
	assert.Error(t, err)
	assert.Nil(t, store.Load())
}

func Test_UpdateProfileMergesEditableFields(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("PUT", r.Method)
		req.Equal("/api/users/profile", r.URL.Path)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Profile updated"})
	}))
	defer server.Close()

	store := testStore(t)
	req.NoError(store.Save(storedSession()))

	client := NewClient(server.URL, store, nil)

	sess, err := client.UpdateProfile(ProfileUpdateRequest{
		FullName: "Alice B. Example",
		Email:    "alice.b@example.com",
	})
	req.NoError(err)
	req.NotNil(sess)

	assert.Equal(t, "Alice B. Example", sess.FullName)
	assert.Equal(t, "alice.b@example.com", sess.Email)
	assert.Equal(t, "5550100", sess.PhoneNumber)
	assert.Equal(t, []string{session.RoleBanker}, sess.Roles)
	assert.Equal(t, "T1", sess.Token)
}

func Test_RegisterDoesNotTouchSession(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/auth/signup", r.URL.Path)
		json.NewEncoder(w).Encode(MessageResponse{Message: "User registered successfully!"})
	}))
	defer server.Close()

	store := testStore(t)
	client := NewClient(server.URL, store, nil)

	msg, err := client.Register(RegisterRequest{
		Username:    "bob42",
		Email:       "bob@example.com",
		Password:    "hunter22",
		PhoneNumber: "5550199",
	})
	req.NoError(err)
	assert.Equal(t, "User registered successfully!", msg)
	assert.Nil(t, store.Load())
}

func Test_ValidationFailsBeforeNetwork(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := NewClient(server.URL, testStore(t), nil)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "transfer to same account",
			call: func() error {
				_, err := client.Transfer(TransferRequest{
					FromAccountNumber: "1001",
					ToAccountNumber:   "1001",
					Amount:            10,
				})
				return err
			},
		},
		{
			name: "transfer negative amount",
			call: func() error {
				_, err := client.Transfer(TransferRequest{
					FromAccountNumber: "1001",
					ToAccountNumber:   "1002",
					Amount:            -5,
				})
				return err
			},
		},
		{
			name: "register bad email",
			call: func() error {
				_, err := client.Register(RegisterRequest{
					Username:    "bob42",
					Email:       "not-an-email",
					Password:    "hunter22",
					PhoneNumber: "5550199",
				})
				return err
			},
		},
		{
			name: "recurring bad frequency",
			call: func() error {
				_, err := client.CreateRecurringPayment(CreateRecurringRequest{
					FromAccountNumber:   "1001",
					TargetAccountNumber: "1002",
					Amount:              10,
					Frequency:           "FORTNIGHTLY",
					StartDate:           "2026-09-01",
				})
				return err
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, test.call())
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func Test_PayBillQueryEncoded(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("POST", r.Method)
		req.Equal("/api/bills/pay", r.URL.Path)
		req.Equal("1001", r.URL.Query().Get("accountNumber"))
		req.Equal("Electricity - BESCOM (CN123)", r.URL.Query().Get("billerName"))
		req.Equal("1250.5", r.URL.Query().Get("amount"))
		json.NewEncoder(w).Encode(MessageResponse{Message: "Payment Successful!"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testStore(t), nil)

	msg, err := client.PayBill(BillPayRequest{
		AccountNumber: "1001",
		BillerName:    "Electricity - BESCOM (CN123)",
		Amount:        1250.5,
	})
	req.NoError(err)
	assert.Equal(t, "Payment Successful!", msg)
}

func Test_ServerMessagePreferred(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "structured message",
			status:   http.StatusBadRequest,
			body:     `{"message": "Insufficient balance"}`,
			expected: "Insufficient balance",
		},
		{
			name:     "empty body falls back to status",
			status:   http.StatusNotFound,
			body:     "",
			expected: "unexpected status code 404",
		},
		{
			name:     "unstructured body falls back to status",
			status:   http.StatusForbidden,
			body:     "forbidden",
			expected: "unexpected status code 403",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, testStore(t), nil)

			_, err := client.MyAccounts()
			require.Error(t, err)
			assert.Equal(t, test.expected, err.Error())
		})
	}
}
