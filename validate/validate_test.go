package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/movestream/movewire"
	"github.com/movestream/movewire/types"
	"github.com/movestream/movewire/validate"
)

func userTxn(version, height types.U64) *types.Transaction {
	return &types.Transaction{
		Version:     version,
		BlockHeight: height,
		Type:        types.TransactionTypeUser,
		Info: &types.TransactionInfo{
			Hash:    []byte{0x01},
			Success: true,
		},
		Data: &types.UserTransaction{
			Request: &types.UserTransactionRequest{
				Sender:         "0xsender",
				SequenceNumber: 1,
				Payload: &types.TransactionPayload{
					Type: types.TransactionPayloadTypeEntryFunction,
					Payload: &types.EntryFunctionPayload{
						Function: &types.EntryFunctionId{
							Module: &types.MoveModuleId{Address: "0x1", Name: "coin"},
							Name:   "transfer",
						},
					},
				},
				Signature: &types.Signature{
					Type: types.SignatureTypeEd25519,
					Signature: &types.Ed25519Signature{
						PublicKey: []byte{0x11}, Signature: []byte{0x22},
					},
				},
			},
			Events: []*types.Event{
				{Key: &types.EventKey{CreationNumber: 3, AccountAddress: "0x1"}, Data: "{}"},
			},
		},
	}
}

func TestBlock_Valid(t *testing.T) {
	blk := &types.Block{
		Height:  100,
		ChainID: 1,
		Transactions: []*types.Transaction{
			{
				Version:     500,
				BlockHeight: 100,
				Type:        types.TransactionTypeBlockMetadata,
				Data:        &types.BlockMetadataTransaction{ID: "b100", Proposer: "0xp"},
			},
			userTxn(501, 100),
			{
				Version:     502,
				BlockHeight: 100,
				Type:        types.TransactionTypeStateCheckpoint,
				Data:        &types.StateCheckpointTransaction{},
			},
		},
	}
	if err := validate.Block(context.Background(), blk); err != nil {
		t.Fatalf("valid block rejected: %v", err)
	}
}

func TestBlock_CollectsEveryViolation(t *testing.T) {
	blk := &types.Block{
		Height: 100,
		Transactions: []*types.Transaction{
			{
				// Discriminant says user, payload is block metadata.
				Version:     500,
				BlockHeight: 100,
				Type:        types.TransactionTypeUser,
				Data:        &types.BlockMetadataTransaction{},
			},
			{
				// Wrong block height and a failed transaction with changes.
				Version:     501,
				BlockHeight: 99,
				Type:        types.TransactionTypeUser,
				Data:        &types.UserTransaction{},
				Info: &types.TransactionInfo{
					Success: false,
					Changes: []*types.WriteSetChange{
						{Type: types.WriteSetChangeTypeWriteResource, Change: &types.WriteResource{Address: "0x1"}},
					},
				},
			},
		},
	}
	err := validate.Block(context.Background(), blk)
	errs, ok := movewire.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}

	var malformed *movewire.MalformedUnionError
	if !errors.As(err, &malformed) {
		t.Fatalf("aggregate does not expose MalformedUnionError: %v", err)
	}
	var consistency *movewire.BlockConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("aggregate does not expose BlockConsistencyError: %v", err)
	}
	if consistency.BlockHeight != 100 {
		t.Fatalf("wrong block height in error: %d", consistency.BlockHeight)
	}
}

func TestBlock_VersionsMustIncrease(t *testing.T) {
	blk := &types.Block{
		Height: 7,
		Transactions: []*types.Transaction{
			{Version: 20, BlockHeight: 7, Type: types.TransactionTypeStateCheckpoint, Data: &types.StateCheckpointTransaction{}},
			{Version: 20, BlockHeight: 7, Type: types.TransactionTypeStateCheckpoint, Data: &types.StateCheckpointTransaction{}},
		},
	}
	err := validate.Block(context.Background(), blk)
	var consistency *movewire.BlockConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("expected BlockConsistencyError, got %v", err)
	}
	if !strings.Contains(consistency.Reason, "does not increase") {
		t.Fatalf("wrong reason: %q", consistency.Reason)
	}
}

func TestTransaction_UnknownDiscriminantTolerated(t *testing.T) {
	// Forward compatibility: a future discriminant with no decoded
	// variant is not a violation.
	txn := &types.Transaction{Version: 1, Type: types.TransactionType(99)}
	if errs := validate.Transaction(txn); len(errs) != 0 {
		t.Fatalf("unrecognized generation flagged: %v", errs)
	}
}

func TestTransaction_ThresholdViolationSurfaces(t *testing.T) {
	txn := userTxn(1, 0)
	txn.BlockHeight = 0
	req := txn.Data.(*types.UserTransaction).Request
	req.Signature = &types.Signature{
		Type: types.SignatureTypeSingleSender,
		Signature: &types.SingleSender{
			Sender: &types.AccountSignature{
				Type: types.AccountSignatureTypeMultiKey,
				Signature: &types.MultiKeySignature{
					PublicKeys: []*types.AnyPublicKey{
						{Type: types.AnyPublicKeyTypeEd25519, PublicKey: []byte{1}},
					},
					SignaturesRequired: 2,
				},
			},
		},
	}
	errs := validate.Transaction(txn)
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(errs), errs)
	}
	if _, ok := movewire.AsThreshold(errs[0]); !ok {
		t.Fatalf("expected ThresholdError, got %v", errs[0])
	}
}

func TestTransaction_EventKeyPresence(t *testing.T) {
	txn := userTxn(1, 0)
	ut := txn.Data.(*types.UserTransaction)
	ut.Events = append(ut.Events,
		&types.Event{SequenceNumber: 1},                        // no key
		&types.Event{Key: &types.EventKey{CreationNumber: 2}}, // empty address
	)
	errs := validate.Transaction(txn)
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(errs), errs)
	}
}

func TestTransaction_MoveTypeKindMismatch(t *testing.T) {
	txn := userTxn(1, 0)
	req := txn.Data.(*types.UserTransaction).Request
	req.Payload.Payload.(*types.EntryFunctionPayload).TypeArguments = []*types.MoveType{
		{Kind: types.MoveTypeKindU64, Content: &types.VectorContent{Element: &types.MoveType{Kind: types.MoveTypeKindU8}}},
	}
	errs := validate.Transaction(txn)
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(errs), errs)
	}
	var malformed *movewire.MalformedUnionError
	if !errors.As(errs[0], &malformed) || malformed.Union != "MoveType.content" {
		t.Fatalf("expected MoveType.content MalformedUnionError, got %v", errs[0])
	}
}
