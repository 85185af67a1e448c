package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfer-ledger/internal/errors"
	"transfer-ledger/internal/ledger"
	"transfer-ledger/internal/service"
	"transfer-ledger/internal/txcode"
)

func TestQueryService_Statement(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	svc := service.NewQueryService(store, testLogger())

	statement, err := svc.Statement("acc-002")
	require.NoError(t, err)

	assert.Equal(t, "acc-002", statement.Account.ID)
	assert.Equal(t, "Maria Santos", statement.Account.Name)
	require.Len(t, statement.Transactions, 3)
	for _, tx := range statement.Transactions {
		assert.True(t, tx.FromAccountID == "acc-002" || tx.ToAccountID == "acc-002")
	}
	for i := 1; i < len(statement.Transactions); i++ {
		assert.False(t, statement.Transactions[i].Timestamp.After(statement.Transactions[i-1].Timestamp))
	}
}

func TestQueryService_Statement_MissingParameter(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	svc := service.NewQueryService(store, testLogger())

	_, err := svc.Statement("")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.MissingParameter, appErr.Code)
}

func TestQueryService_Statement_AccountNotFound(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	svc := service.NewQueryService(store, testLogger())

	_, err := svc.Statement("acc-999")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.AccountNotFound, appErr.Code)
}

func TestQueryService_AllTransactions(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	svc := service.NewQueryService(store, testLogger())

	txs := svc.AllTransactions()
	require.Len(t, txs, 7)
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Timestamp.After(txs[i-1].Timestamp))
	}
}

func TestQueryService_ReadsAreIdempotent(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	svc := service.NewQueryService(store, testLogger())

	first, err := svc.Statement("acc-001")
	require.NoError(t, err)
	second, err := svc.Statement("acc-001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, svc.AllTransactions(), svc.AllTransactions())
}

func TestQueryService_StatementConsistentUnderConcurrentTransfers(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	querySvc := service.NewQueryService(store, testLogger())
	transferSvc := service.NewTransferService(store, txcode.NewGenerator(), testLogger())

	step := dec("0.01")
	seedBalance := dec("8500.00")

	const transfers = 500
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < transfers; i++ {
			_, err := transferSvc.Execute(&service.TransferRequest{
				FromAccountID: "acc-003",
				ToAccountID:   "acc-002",
				Amount:        step,
			})
			assert.NoError(t, err)
		}
	}()

	// The reported balance must always equal the seed balance plus the
	// incoming transfers the statement itself lists.
	for {
		statement, err := querySvc.Statement("acc-002")
		require.NoError(t, err)

		visible := int64(0)
		for _, tx := range statement.Transactions {
			if tx.Amount.Equal(step) {
				visible++
			}
		}
		want := seedBalance.Add(step.Mul(decimal.NewFromInt(visible)))
		require.True(t, statement.Account.Balance.Equal(want),
			"balance %s does not match %d visible transfers", statement.Account.Balance, visible)

		select {
		case <-done:
			statement, err := querySvc.Statement("acc-002")
			require.NoError(t, err)
			final := seedBalance.Add(step.Mul(decimal.NewFromInt(transfers)))
			require.True(t, statement.Account.Balance.Equal(final), "got %s", statement.Account.Balance)
			return
		default:
		}
	}
}

func TestQueryService_StatementReflectsCompletedTransfer(t *testing.T) {
	store := ledger.NewSeededStore(testLogger())
	querySvc := service.NewQueryService(store, testLogger())
	transferSvc := service.NewTransferService(store, txcode.NewGenerator(), testLogger())

	before, err := querySvc.Statement("acc-002")
	require.NoError(t, err)

	tx, err := transferSvc.Execute(&service.TransferRequest{
		FromAccountID: "acc-001",
		ToAccountID:   "acc-002",
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)

	after, err := querySvc.Statement("acc-002")
	require.NoError(t, err)

	assert.True(t, after.Account.Balance.Equal(before.Account.Balance.Add(dec("100.00"))))
	require.Len(t, after.Transactions, len(before.Transactions)+1)
	assert.Equal(t, tx.ID, after.Transactions[0].ID)
}
