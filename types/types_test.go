package types_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/movestream/movewire"
	"github.com/movestream/movewire/types"

	"google.golang.org/protobuf/encoding/protowire"
)

// roundTrip marshals v, unmarshals into out, and returns out.
func roundTrip[M movewire.Message](t *testing.T, v, out M) M {
	t.Helper()
	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	return out
}

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := types.TimeToTimestamp(time.Date(2024, 6, 15, 12, 30, 45, 123456789, time.UTC))
	got := roundTrip(t, ts, new(types.Timestamp))
	if !reflect.DeepEqual(got, ts) {
		t.Fatalf("Timestamp round-trip failed: got %+v, want %+v", got, ts)
	}
	goTime := got.ToTime()
	if goTime.Year() != 2024 || goTime.Month() != 6 || goTime.Day() != 15 {
		t.Fatalf("Timestamp.ToTime date wrong: %v", goTime)
	}
	if goTime.Nanosecond() != 123456789 {
		t.Fatalf("Timestamp.ToTime nanos wrong: %d", goTime.Nanosecond())
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	blk := &types.Block{
		Timestamp: &types.Timestamp{Seconds: 1718451045, Nanos: 42},
		Height:    1000,
		ChainID:   1,
		Transactions: []*types.Transaction{
			{
				Timestamp:   &types.Timestamp{Seconds: 1718451045},
				Version:     52001,
				Epoch:       7,
				BlockHeight: 1000,
				Type:        types.TransactionTypeBlockMetadata,
				Info: &types.TransactionInfo{
					Hash:                []byte{0xaa, 0xbb},
					StateChangeHash:     []byte{0x01},
					EventRootHash:       []byte{0x02},
					GasUsed:             0,
					Success:             true,
					VMStatus:            "Executed successfully",
					AccumulatorRootHash: []byte{0x03},
				},
				Data: &types.BlockMetadataTransaction{
					ID:                       "block-1000",
					Round:                    12,
					Proposer:                 "0xproposer",
					PreviousBlockVotesBitvec: []byte{0b10110000},
					FailedProposerIndices:    []uint32{0, 3},
					Events: []*types.Event{
						{
							Key:            &types.EventKey{CreationNumber: 2, AccountAddress: "0x1"},
							SequenceNumber: 99,
							Type: &types.MoveType{
								Kind: types.MoveTypeKindStruct,
								Content: &types.StructContent{Tag: &types.MoveStructTag{
									Address: "0x1", Module: "block", Name: "NewBlockEvent",
								}},
							},
							Data:    `{"height":"1000"}`,
							TypeStr: "0x1::block::NewBlockEvent",
						},
					},
				},
			},
			{
				Version:     52002,
				BlockHeight: 1000,
				Type:        types.TransactionTypeUser,
				Data: &types.UserTransaction{
					Request: &types.UserTransactionRequest{
						Sender:                  "0xsender",
						SequenceNumber:          5,
						MaxGasAmount:            2000,
						GasUnitPrice:            100,
						ExpirationTimestampSecs: &types.Timestamp{Seconds: 1718454645},
						Payload: &types.TransactionPayload{
							Type: types.TransactionPayloadTypeEntryFunction,
							Payload: &types.EntryFunctionPayload{
								Function: &types.EntryFunctionId{
									Module: &types.MoveModuleId{Address: "0x1", Name: "coin"},
									Name:   "transfer",
								},
								TypeArguments: []*types.MoveType{
									{Kind: types.MoveTypeKindStruct, Content: &types.StructContent{Tag: &types.MoveStructTag{
										Address: "0x1", Module: "move_coin", Name: "MoveCoin",
									}}},
								},
								Arguments:          []string{`"0xdead"`, `"100"`},
								EntryFunctionIDStr: "0x1::coin::transfer",
							},
						},
						Signature: &types.Signature{
							Type: types.SignatureTypeEd25519,
							Signature: &types.Ed25519Signature{
								PublicKey: bytes.Repeat([]byte{0x11}, 32),
								Signature: bytes.Repeat([]byte{0x22}, 64),
							},
						},
					},
				},
			},
		},
	}
	got := roundTrip(t, blk, new(types.Block))
	if !reflect.DeepEqual(got, blk) {
		t.Fatalf("Block round-trip failed:\ngot  %+v\nwant %+v", got, blk)
	}
}

func TestTransaction_UnknownFieldsPreserved(t *testing.T) {
	txn := &types.Transaction{
		Version:     7,
		BlockHeight: 3,
		Type:        types.TransactionTypeStateCheckpoint,
		Data:        &types.StateCheckpointTransaction{},
	}
	enc, err := txn.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	// Splice in a field from a future schema generation, numbered above
	// everything this reader knows.
	raw := append([]byte(nil), enc...)
	raw = protowire.AppendTag(raw, 999, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 12345)
	raw = protowire.AppendTag(raw, 1000, protowire.BytesType)
	raw = protowire.AppendBytes(raw, []byte("future payload"))

	var decoded types.Transaction
	if err := decoded.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded.Version != 7 || decoded.Type != types.TransactionTypeStateCheckpoint {
		t.Fatalf("known fields lost: %+v", decoded)
	}

	reenc, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if !bytes.Equal(reenc, raw) {
		t.Fatalf("unknown fields not preserved byte-exact:\ngot  %x\nwant %x", reenc, raw)
	}
}

func TestTransaction_DuplicateVariantRejected(t *testing.T) {
	// Two txn_data variants in one message.
	var raw []byte
	raw = protowire.AppendTag(raw, 9, protowire.BytesType)
	raw = protowire.AppendBytes(raw, nil) // state_checkpoint
	raw = protowire.AppendTag(raw, 8, protowire.BytesType)
	raw = protowire.AppendBytes(raw, nil) // genesis

	var txn types.Transaction
	err := txn.UnmarshalBinary(raw)
	var malformed *movewire.MalformedUnionError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedUnionError, got %v", err)
	}
	if malformed.Union != "Transaction.txn_data" {
		t.Fatalf("wrong union in error: %q", malformed.Union)
	}
}

func TestTransaction_UnrecognizedGeneration(t *testing.T) {
	var raw []byte
	raw = protowire.AppendTag(raw, 2, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 42)
	raw = protowire.AppendTag(raw, 6, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 99) // discriminant from the future
	raw = protowire.AppendTag(raw, 30, protowire.BytesType)
	raw = protowire.AppendBytes(raw, []byte{0x08, 0x01}) // its payload field

	var txn types.Transaction
	if err := txn.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !txn.Unrecognized() {
		t.Fatalf("expected Unrecognized() for discriminant 99 with no known payload")
	}
	if txn.Type.Known() {
		t.Fatalf("Type.Known() true for raw value 99")
	}

	reenc, err := txn.MarshalBinary()
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if !bytes.Equal(reenc, raw) {
		t.Fatalf("unrecognized transaction not preserved byte-exact")
	}
}

func TestTransaction_MinimalStateCheckpoint(t *testing.T) {
	in := &types.Transaction{
		Version: 42,
		Type:    types.TransactionTypeStateCheckpoint,
		Data:    &types.StateCheckpointTransaction{},
	}
	got := roundTrip(t, in, new(types.Transaction))
	if got.Version != 42 {
		t.Fatalf("version: got %s, want 42", got.Version)
	}
	if _, ok := got.Data.(*types.StateCheckpointTransaction); !ok {
		t.Fatalf("state checkpoint variant not populated: %T", got.Data)
	}
	if got.Type != types.TransactionTypeStateCheckpoint {
		t.Fatalf("discriminant: got %s", got.Type)
	}
}

func TestTransactionInfo_CheckpointHashPresence(t *testing.T) {
	// Absent: nil slice emits no field.
	absent := &types.TransactionInfo{Hash: []byte{0x01}, Success: true}
	got := roundTrip(t, absent, new(types.TransactionInfo))
	if got.StateCheckpointHash != nil {
		t.Fatalf("absent hash became present: %v", got.StateCheckpointHash)
	}

	// Present but empty: non-nil empty slice survives as present.
	present := &types.TransactionInfo{Hash: []byte{0x01}, StateCheckpointHash: []byte{}}
	got = roundTrip(t, present, new(types.TransactionInfo))
	if got.StateCheckpointHash == nil {
		t.Fatalf("present empty hash became absent")
	}
	if len(got.StateCheckpointHash) != 0 {
		t.Fatalf("present empty hash gained bytes: %v", got.StateCheckpointHash)
	}
}

func TestWriteSetChange_RoundTripAndKind(t *testing.T) {
	change := &types.WriteSetChange{
		Type: types.WriteSetChangeTypeWriteResource,
		Change: &types.WriteResource{
			Address:      "0xabc",
			StateKeyHash: []byte{0x10, 0x20},
			Type:         &types.MoveStructTag{Address: "0x1", Module: "coin", Name: "CoinStore"},
			TypeStr:      "0x1::coin::CoinStore",
			Data:         `{"coin":{"value":"100"}}`,
		},
	}
	got := roundTrip(t, change, new(types.WriteSetChange))
	if !reflect.DeepEqual(got, change) {
		t.Fatalf("WriteSetChange round-trip failed:\ngot  %+v\nwant %+v", got, change)
	}
	if got.Type.Kind() != types.ChangeKindWrite {
		t.Fatalf("WriteResource classified as %v", got.Type.Kind())
	}
	if types.WriteSetChangeTypeDeleteTableItem.Kind() != types.ChangeKindDelete {
		t.Fatalf("DeleteTableItem not classified as delete")
	}
	if types.WriteSetChangeType(42).Kind() != types.ChangeKindUnknown {
		t.Fatalf("raw change type not classified as unknown")
	}
}

func TestGenesisTransaction_DirectWriteSet(t *testing.T) {
	gen := &types.GenesisTransaction{
		Payload: &types.WriteSet{
			Type: types.WriteSetTypeDirect,
			Variant: &types.DirectWriteSet{
				WriteSetChange: []*types.WriteSetChange{
					{
						Type: types.WriteSetChangeTypeWriteModule,
						Change: &types.WriteModule{
							Address:      "0x1",
							StateKeyHash: []byte{0x01},
							Data: &types.MoveModuleBytecode{
								Bytecode: []byte{0xca, 0xfe},
								ABI: &types.MoveModule{
									Address: "0x1",
									Name:    "genesis",
									ExposedFunctions: []*types.MoveFunction{
										{
											Name:       "initialize",
											Visibility: types.VisibilityPublic,
											IsEntry:    true,
											Params: []*types.MoveType{
												{Kind: types.MoveTypeKindSigner},
											},
										},
									},
									Structs: []*types.MoveStruct{
										{
											Name:      "Config",
											Abilities: []types.MoveAbility{types.MoveAbilityKey},
											Fields: []*types.MoveStructField{
												{Name: "epoch", Type: &types.MoveType{Kind: types.MoveTypeKindU64}},
											},
										},
									},
								},
							},
						},
					},
				},
				Events: []*types.Event{
					{Key: &types.EventKey{CreationNumber: 0, AccountAddress: "0x1"}, Data: "{}"},
				},
			},
		},
	}
	got := roundTrip(t, gen, new(types.GenesisTransaction))
	if !reflect.DeepEqual(got, gen) {
		t.Fatalf("GenesisTransaction round-trip failed:\ngot  %+v\nwant %+v", got, gen)
	}
}

func TestWriteSet_DuplicateVariantRejected(t *testing.T) {
	var raw []byte
	raw = protowire.AppendTag(raw, 2, protowire.BytesType)
	raw = protowire.AppendBytes(raw, nil)
	raw = protowire.AppendTag(raw, 3, protowire.BytesType)
	raw = protowire.AppendBytes(raw, nil)

	var ws types.WriteSet
	var malformed *movewire.MalformedUnionError
	if err := ws.UnmarshalBinary(raw); !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedUnionError, got %v", err)
	}
}

func TestMoveType_GenericParamZeroIndex(t *testing.T) {
	// Oneof membership keeps a zero index present on the wire.
	mt := &types.MoveType{
		Kind:    types.MoveTypeKindGenericTypeParam,
		Content: &types.GenericTypeParamContent{Index: 0},
	}
	got := roundTrip(t, mt, new(types.MoveType))
	if !reflect.DeepEqual(got, mt) {
		t.Fatalf("zero generic param index lost: %+v", got)
	}
}

func TestMoveType_NestedRoundTrip(t *testing.T) {
	mt := &types.MoveType{
		Kind: types.MoveTypeKindVector,
		Content: &types.VectorContent{Element: &types.MoveType{
			Kind: types.MoveTypeKindReference,
			Content: &types.ReferenceContent{Reference: &types.ReferenceType{
				Mutable: true,
				To: &types.MoveType{
					Kind: types.MoveTypeKindStruct,
					Content: &types.StructContent{Tag: &types.MoveStructTag{
						Address: "0x1", Module: "option", Name: "Option",
						GenericTypeParams: []*types.MoveType{{Kind: types.MoveTypeKindU256}},
					}},
				},
			}},
		}},
	}
	got := roundTrip(t, mt, new(types.MoveType))
	if !reflect.DeepEqual(got, mt) {
		t.Fatalf("nested MoveType round-trip failed:\ngot  %+v\nwant %+v", got, mt)
	}
}

func nestedVector(depth int) *types.MoveType {
	mt := &types.MoveType{Kind: types.MoveTypeKindU8}
	for i := 0; i < depth; i++ {
		mt = &types.MoveType{Kind: types.MoveTypeKindVector, Content: &types.VectorContent{Element: mt}}
	}
	return mt
}

func TestMoveType_DepthLimit(t *testing.T) {
	// Well under the cap: encodes and decodes.
	ok := nestedVector(200)
	got := roundTrip(t, ok, new(types.MoveType))
	if !reflect.DeepEqual(got, ok) {
		t.Fatalf("200-deep vector round-trip failed")
	}

	// Over the cap: encoding refuses.
	deep := nestedVector(300)
	_, err := deep.MarshalBinary()
	var limit *movewire.RecursionLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected RecursionLimitError on encode, got %v", err)
	}
	if limit.Limit != types.MaxTypeDepth {
		t.Fatalf("wrong limit in error: %d", limit.Limit)
	}

	// Over the cap on the wire: decoding refuses. Built by hand so the
	// encoder's own cap cannot get in the way.
	inner := protowire.AppendTag(nil, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(types.MoveTypeKindU8))
	for i := 0; i < 300; i++ {
		var outer []byte
		outer = protowire.AppendTag(outer, 1, protowire.VarintType)
		outer = protowire.AppendVarint(outer, uint64(types.MoveTypeKindVector))
		outer = protowire.AppendTag(outer, 3, protowire.BytesType)
		outer = protowire.AppendBytes(outer, inner)
		inner = outer
	}
	var mt types.MoveType
	if err := mt.UnmarshalBinary(inner); !errors.As(err, &limit) {
		t.Fatalf("expected RecursionLimitError on decode, got %v", err)
	}
}

func TestMultiEd25519_ThresholdChecks(t *testing.T) {
	keys := [][]byte{bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 32)}
	sig := bytes.Repeat([]byte{9}, 64)

	cases := []struct {
		name string
		msg  *types.MultiEd25519Signature
	}{
		{"more signatures than keys", &types.MultiEd25519Signature{
			PublicKeys: keys, Signatures: [][]byte{sig, sig, sig}, Threshold: 1,
		}},
		{"threshold exceeds keys", &types.MultiEd25519Signature{
			PublicKeys: keys, Signatures: [][]byte{sig}, Threshold: 3,
		}},
		{"index out of range", &types.MultiEd25519Signature{
			PublicKeys: keys, Signatures: [][]byte{sig}, Threshold: 1, PublicKeyIndices: []uint32{2},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := tc.msg.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}
			var out types.MultiEd25519Signature
			err = out.UnmarshalBinary(enc)
			thr, ok := movewire.AsThreshold(err)
			if !ok {
				t.Fatalf("expected ThresholdError, got %v", err)
			}
			if thr.Scheme != "multi_ed25519" {
				t.Fatalf("wrong scheme: %q", thr.Scheme)
			}
		})
	}

	// A coherent scheme decodes.
	good := &types.MultiEd25519Signature{
		PublicKeys:       keys,
		Signatures:       [][]byte{sig},
		Threshold:        1,
		PublicKeyIndices: []uint32{1},
	}
	got := roundTrip(t, good, new(types.MultiEd25519Signature))
	if !reflect.DeepEqual(got, good) {
		t.Fatalf("MultiEd25519Signature round-trip failed")
	}
}

func TestMultiKeySignature_ThresholdChecks(t *testing.T) {
	keys := []*types.AnyPublicKey{
		{Type: types.AnyPublicKeyTypeEd25519, PublicKey: bytes.Repeat([]byte{1}, 32)},
		{Type: types.AnyPublicKeyTypeSecp256k1Ecdsa, PublicKey: bytes.Repeat([]byte{2}, 33)},
	}
	sig := &types.AnySignature{
		Type:    types.AnySignatureTypeEd25519,
		Variant: &types.Ed25519{Signature: bytes.Repeat([]byte{9}, 64)},
	}

	bad := &types.MultiKeySignature{
		PublicKeys:         keys,
		Signatures:         []*types.IndexedSignature{{Index: 5, Signature: sig}},
		SignaturesRequired: 1,
	}
	enc, err := bad.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	var out types.MultiKeySignature
	err = out.UnmarshalBinary(enc)
	thr, ok := movewire.AsThreshold(err)
	if !ok {
		t.Fatalf("expected ThresholdError, got %v", err)
	}
	if thr.Scheme != "multi_key" {
		t.Fatalf("wrong scheme: %q", thr.Scheme)
	}

	good := &types.MultiKeySignature{
		PublicKeys:         keys,
		Signatures:         []*types.IndexedSignature{{Index: 1, Signature: sig}},
		SignaturesRequired: 2,
	}
	got := roundTrip(t, good, new(types.MultiKeySignature))
	if !reflect.DeepEqual(got, good) {
		t.Fatalf("MultiKeySignature round-trip failed")
	}
}

func TestSignature_FeePayerRoundTrip(t *testing.T) {
	sig := &types.Signature{
		Type: types.SignatureTypeFeePayer,
		Signature: &types.FeePayerSignature{
			Sender: &types.AccountSignature{
				Type: types.AccountSignatureTypeEd25519,
				Signature: &types.Ed25519Signature{
					PublicKey: bytes.Repeat([]byte{1}, 32),
					Signature: bytes.Repeat([]byte{2}, 64),
				},
			},
			SecondarySignerAddresses: []string{"0xaaa", "0xbbb"},
			SecondarySigners: []*types.AccountSignature{
				{
					Type: types.AccountSignatureTypeSingleKey,
					Signature: &types.SingleKeySignature{
						PublicKey: &types.AnyPublicKey{Type: types.AnyPublicKeyTypeSecp256r1Ecdsa, PublicKey: []byte{7}},
						Signature: &types.AnySignature{
							Type:    types.AnySignatureTypeWebAuthn,
							Variant: &types.WebAuthn{Signature: []byte{8, 9}},
						},
					},
				},
				{
					Type: types.AccountSignatureTypeEd25519,
					Signature: &types.Ed25519Signature{
						PublicKey: bytes.Repeat([]byte{3}, 32),
						Signature: bytes.Repeat([]byte{4}, 64),
					},
				},
			},
			FeePayerAddress: "0xfee",
			FeePayerSigner: &types.AccountSignature{
				Type: types.AccountSignatureTypeEd25519,
				Signature: &types.Ed25519Signature{
					PublicKey: bytes.Repeat([]byte{5}, 32),
					Signature: bytes.Repeat([]byte{6}, 64),
				},
			},
		},
	}
	got := roundTrip(t, sig, new(types.Signature))
	if !reflect.DeepEqual(got, sig) {
		t.Fatalf("FeePayerSignature round-trip failed:\ngot  %+v\nwant %+v", got, sig)
	}
}

func TestAnySignature_LegacyAndVariant(t *testing.T) {
	// Both the superseded flat bytes and the typed variant coexist.
	sig := &types.AnySignature{
		Type:      types.AnySignatureTypeSecp256k1Ecdsa,
		Signature: []byte{0xde, 0xad},
		Variant:   &types.Secp256k1Ecdsa{Signature: []byte{0xde, 0xad}},
	}
	got := roundTrip(t, sig, new(types.AnySignature))
	if !reflect.DeepEqual(got, sig) {
		t.Fatalf("AnySignature round-trip failed:\ngot  %+v\nwant %+v", got, sig)
	}
}

func TestMultisigPayload_OptionalInner(t *testing.T) {
	// Inner payload absent: the transaction was stored on-chain.
	stored := &types.TransactionPayload{
		Type:    types.TransactionPayloadTypeMultisig,
		Payload: &types.MultisigPayload{MultisigAddress: "0xmsig"},
	}
	got := roundTrip(t, stored, new(types.TransactionPayload))
	if !reflect.DeepEqual(got, stored) {
		t.Fatalf("stored multisig round-trip failed")
	}

	inline := &types.TransactionPayload{
		Type: types.TransactionPayloadTypeMultisig,
		Payload: &types.MultisigPayload{
			MultisigAddress: "0xmsig",
			TransactionPayload: &types.MultisigTransactionPayload{
				Type: types.MultisigTransactionPayloadTypeEntryFunction,
				EntryFunctionPayload: &types.EntryFunctionPayload{
					Function: &types.EntryFunctionId{
						Module: &types.MoveModuleId{Address: "0x1", Name: "coin"},
						Name:   "transfer",
					},
					EntryFunctionIDStr: "0x1::coin::transfer",
				},
			},
		},
	}
	got = roundTrip(t, inline, new(types.TransactionPayload))
	if !reflect.DeepEqual(got, inline) {
		t.Fatalf("inline multisig round-trip failed")
	}
}

func TestU64_JSON(t *testing.T) {
	v := types.U64(18446744073709551615)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"18446744073709551615"` {
		t.Fatalf("U64 JSON form wrong: %s", data)
	}

	var back types.U64
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != v {
		t.Fatalf("U64 JSON round-trip failed: %d", back)
	}

	// Bare numbers from lenient producers are accepted.
	if err := json.Unmarshal([]byte(`42`), &back); err != nil {
		t.Fatalf("bare number rejected: %v", err)
	}
	if back != 42 {
		t.Fatalf("bare number parsed wrong: %d", back)
	}

	// One past the maximum is an out-of-range error, not a silent wrap.
	err = json.Unmarshal([]byte(`"18446744073709551616"`), &back)
	var oor *movewire.ValueOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected ValueOutOfRangeError, got %v", err)
	}

	// Mismatched or doubled quotes are malformed, not lenient input.
	for _, bad := range []string{`"42`, `42"`, `""42""`, `""`} {
		if err := back.UnmarshalJSON([]byte(bad)); err == nil {
			t.Fatalf("malformed scalar %s accepted", bad)
		}
	}
}

func TestRoundtripHelper(t *testing.T) {
	blk := &types.Block{Height: 5, ChainID: 2}
	if err := movewire.Roundtrip(blk, new(types.Block)); err != nil {
		t.Fatalf("Roundtrip failed: %v", err)
	}
}
