// Package validate is the stateless structural pass run after decode.
// It composes the tagged-union, threshold and presence checks of the
// schema into a single block-level validation that collects every
// violation instead of stopping at the first, so one malformed
// transaction cannot hide independent defects elsewhere in the block.
package validate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/movestream/movewire"
	"github.com/movestream/movewire/types"

	"golang.org/x/sync/errgroup"
)

// Block validates blk and every transaction in it. Per-transaction
// checks run concurrently; the block-level cross-checks run after all
// of them have finished. The returned error is nil or a
// movewire.ValidationErrors carrying every violation found.
func Block(ctx context.Context, blk *types.Block) error {
	perTxn := make([][]error, len(blk.Transactions))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, txn := range blk.Transactions {
		i, txn := i, txn
		g.Go(func() error {
			perTxn[i] = Transaction(txn)
			return nil
		})
	}
	// Workers collect into perTxn and never fail.
	_ = g.Wait()

	var errs movewire.ValidationErrors
	for i, txnErrs := range perTxn {
		for _, err := range txnErrs {
			errs = append(errs, fmt.Errorf("transaction %d (version %s): %w",
				i, blk.Transactions[i].Version, err))
		}
	}

	// Join point: cross-checks over the whole block.
	var lastVersion types.U64
	for i, txn := range blk.Transactions {
		if txn.BlockHeight != blk.Height {
			errs = append(errs, &movewire.BlockConsistencyError{
				BlockHeight: uint64(blk.Height),
				Reason: fmt.Sprintf("transaction %d (version %s) reports block height %s",
					i, txn.Version, txn.BlockHeight),
			})
		}
		if i > 0 && txn.Version <= lastVersion {
			errs = append(errs, &movewire.BlockConsistencyError{
				BlockHeight: uint64(blk.Height),
				Reason: fmt.Sprintf("transaction %d version %s does not increase over %s",
					i, txn.Version, lastVersion),
			})
		}
		lastVersion = txn.Version
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Transaction returns every structural violation found in one
// transaction. It never short-circuits.
func Transaction(txn *types.Transaction) []error {
	c := &collector{}
	c.transaction(txn)
	return c.errs
}

type collector struct {
	errs []error
}

func (c *collector) add(err error) {
	c.errs = append(c.errs, err)
}

func (c *collector) malformed(union, format string, args ...any) {
	c.add(&movewire.MalformedUnionError{Union: union, Reason: fmt.Sprintf(format, args...)})
}

func (c *collector) transaction(txn *types.Transaction) {
	want := txnDataType(txn.Data)
	switch {
	case txn.Data == nil && txn.Type.Known():
		c.malformed("Transaction.txn_data", "discriminant %s but no variant populated", txn.Type)
	case txn.Data == nil && txn.Type == types.TransactionTypeUnspecified:
		c.malformed("Transaction.txn_data", "no variant populated")
	case txn.Data != nil && txn.Type != want:
		c.malformed("Transaction.txn_data", "discriminant %s does not match populated variant %s", txn.Type, want)
	}

	if txn.Info != nil {
		if !txn.Info.Success && len(txn.Info.Changes) > 0 {
			c.add(fmt.Errorf("failed transaction carries %d write-set changes", len(txn.Info.Changes)))
		}
		for _, ch := range txn.Info.Changes {
			c.change(ch)
		}
	}

	switch d := txn.Data.(type) {
	case *types.BlockMetadataTransaction:
		c.events(d.Events)
	case *types.GenesisTransaction:
		if d.Payload != nil {
			c.writeSet(d.Payload)
		}
		c.events(d.Events)
	case *types.UserTransaction:
		c.events(d.Events)
		if d.Request != nil {
			if d.Request.Payload != nil {
				c.payload(d.Request.Payload)
			}
			if d.Request.Signature != nil {
				c.signature(d.Request.Signature)
			}
		}
	}
}

func (c *collector) events(evts []*types.Event) {
	for i, e := range evts {
		if e.Key == nil {
			c.add(fmt.Errorf("event %d has no key", i))
			continue
		}
		if e.Key.AccountAddress == "" {
			c.add(fmt.Errorf("event %d key has empty account address", i))
		}
		if e.Type != nil {
			c.moveType(e.Type)
		}
	}
}

func (c *collector) writeSet(ws *types.WriteSet) {
	want := writeSetType(ws.Variant)
	switch {
	case ws.Variant == nil && ws.Type != types.WriteSetTypeUnspecified:
		c.malformed("WriteSet.write_set", "discriminant %s but no variant populated", ws.Type)
	case ws.Variant != nil && ws.Type != want:
		c.malformed("WriteSet.write_set", "discriminant %s does not match populated variant %s", ws.Type, want)
	}
	switch v := ws.Variant.(type) {
	case *types.ScriptWriteSet:
	case *types.DirectWriteSet:
		for _, ch := range v.WriteSetChange {
			c.change(ch)
		}
		c.events(v.Events)
	}
}

func (c *collector) change(ch *types.WriteSetChange) {
	want := changeType(ch.Change)
	switch {
	case ch.Change == nil && ch.Type != types.WriteSetChangeTypeUnspecified:
		c.malformed("WriteSetChange.change", "discriminant %s but no variant populated", ch.Type)
	case ch.Change != nil && ch.Type != want:
		c.malformed("WriteSetChange.change", "discriminant %s does not match populated variant %s", ch.Type, want)
	}
	if dr, ok := ch.Change.(*types.DeleteResource); ok && dr.Type != nil {
		c.structTag(dr.Type)
	}
	if wr, ok := ch.Change.(*types.WriteResource); ok && wr.Type != nil {
		c.structTag(wr.Type)
	}
}

func (c *collector) payload(p *types.TransactionPayload) {
	want := payloadType(p.Payload)
	switch {
	case p.Payload == nil && p.Type != types.TransactionPayloadTypeUnspecified:
		c.malformed("TransactionPayload.payload", "discriminant %s but no variant populated", p.Type)
	case p.Payload != nil && p.Type != want:
		c.malformed("TransactionPayload.payload", "discriminant %s does not match populated variant %s", p.Type, want)
	}
	switch v := p.Payload.(type) {
	case *types.EntryFunctionPayload:
		c.moveTypes(v.TypeArguments)
	case *types.ScriptPayload:
		c.moveTypes(v.TypeArguments)
	case *types.WriteSetPayload:
		if v.WriteSet != nil {
			c.writeSet(v.WriteSet)
		}
	case *types.MultisigPayload:
		inner := v.TransactionPayload
		if inner == nil {
			return
		}
		if inner.EntryFunctionPayload == nil && inner.Type == types.MultisigTransactionPayloadTypeEntryFunction {
			c.malformed("MultisigTransactionPayload.payload", "discriminant entry_function_payload but no variant populated")
		}
		if inner.EntryFunctionPayload != nil {
			if inner.Type != types.MultisigTransactionPayloadTypeEntryFunction {
				c.malformed("MultisigTransactionPayload.payload", "discriminant %d does not match populated variant", inner.Type)
			}
			c.moveTypes(inner.EntryFunctionPayload.TypeArguments)
		}
	}
}

func (c *collector) signature(s *types.Signature) {
	want := signatureType(s.Signature)
	switch {
	case s.Signature == nil && s.Type != types.SignatureTypeUnspecified:
		c.malformed("Signature.signature", "discriminant %s but no variant populated", s.Type)
	case s.Signature != nil && s.Type != want:
		c.malformed("Signature.signature", "discriminant %s does not match populated variant %s", s.Type, want)
	}
	switch v := s.Signature.(type) {
	case *types.Ed25519Signature:
	case *types.MultiEd25519Signature:
		if err := v.CheckThreshold(); err != nil {
			c.add(err)
		}
	case *types.MultiAgentSignature:
		c.accountSignature(v.Sender)
		for _, as := range v.SecondarySigners {
			c.accountSignature(as)
		}
	case *types.FeePayerSignature:
		c.accountSignature(v.Sender)
		for _, as := range v.SecondarySigners {
			c.accountSignature(as)
		}
		c.accountSignature(v.FeePayerSigner)
	case *types.SingleSender:
		c.accountSignature(v.Sender)
	}
}

func (c *collector) accountSignature(a *types.AccountSignature) {
	if a == nil {
		return
	}
	want := accountSignatureType(a.Signature)
	switch {
	case a.Signature == nil && a.Type != types.AccountSignatureTypeUnspecified:
		c.malformed("AccountSignature.signature", "discriminant %s but no variant populated", a.Type)
	case a.Signature != nil && a.Type != want:
		c.malformed("AccountSignature.signature", "discriminant %s does not match populated variant %s", a.Type, want)
	}
	switch v := a.Signature.(type) {
	case *types.MultiEd25519Signature:
		if err := v.CheckThreshold(); err != nil {
			c.add(err)
		}
	case *types.MultiKeySignature:
		if err := v.CheckThreshold(); err != nil {
			c.add(err)
		}
	}
}

func (c *collector) moveTypes(ts []*types.MoveType) {
	for _, t := range ts {
		c.moveType(t)
	}
}

// moveType checks kind/content agreement through the whole descriptor
// tree. Decode already caps the depth, so plain recursion is safe here.
func (c *collector) moveType(t *types.MoveType) {
	switch v := t.Content.(type) {
	case nil:
		switch t.Kind {
		case types.MoveTypeKindVector, types.MoveTypeKindStruct,
			types.MoveTypeKindGenericTypeParam, types.MoveTypeKindReference,
			types.MoveTypeKindUnparsable:
			c.malformed("MoveType.content", "kind %s but no content populated", t.Kind)
		}
	case *types.VectorContent:
		if t.Kind != types.MoveTypeKindVector {
			c.malformed("MoveType.content", "kind %s does not match vector content", t.Kind)
		}
		if v.Element != nil {
			c.moveType(v.Element)
		}
	case *types.StructContent:
		if t.Kind != types.MoveTypeKindStruct {
			c.malformed("MoveType.content", "kind %s does not match struct content", t.Kind)
		}
		if v.Tag != nil {
			c.structTag(v.Tag)
		}
	case *types.GenericTypeParamContent:
		if t.Kind != types.MoveTypeKindGenericTypeParam {
			c.malformed("MoveType.content", "kind %s does not match generic type param content", t.Kind)
		}
	case *types.ReferenceContent:
		if t.Kind != types.MoveTypeKindReference {
			c.malformed("MoveType.content", "kind %s does not match reference content", t.Kind)
		}
		if v.Reference != nil && v.Reference.To != nil {
			c.moveType(v.Reference.To)
		}
	case *types.UnparsableContent:
		if t.Kind != types.MoveTypeKindUnparsable {
			c.malformed("MoveType.content", "kind %s does not match unparsable content", t.Kind)
		}
	}
}

func (c *collector) structTag(tag *types.MoveStructTag) {
	c.moveTypes(tag.GenericTypeParams)
}

func txnDataType(d types.TxnData) types.TransactionType {
	switch d.(type) {
	case *types.BlockMetadataTransaction:
		return types.TransactionTypeBlockMetadata
	case *types.GenesisTransaction:
		return types.TransactionTypeGenesis
	case *types.StateCheckpointTransaction:
		return types.TransactionTypeStateCheckpoint
	case *types.UserTransaction:
		return types.TransactionTypeUser
	case *types.ValidatorTransaction:
		return types.TransactionTypeValidator
	}
	return types.TransactionTypeUnspecified
}

func writeSetType(v types.WriteSetVariant) types.WriteSetType {
	switch v.(type) {
	case *types.ScriptWriteSet:
		return types.WriteSetTypeScript
	case *types.DirectWriteSet:
		return types.WriteSetTypeDirect
	}
	return types.WriteSetTypeUnspecified
}

func changeType(v types.ChangeVariant) types.WriteSetChangeType {
	switch v.(type) {
	case *types.DeleteModule:
		return types.WriteSetChangeTypeDeleteModule
	case *types.DeleteResource:
		return types.WriteSetChangeTypeDeleteResource
	case *types.DeleteTableItem:
		return types.WriteSetChangeTypeDeleteTableItem
	case *types.WriteModule:
		return types.WriteSetChangeTypeWriteModule
	case *types.WriteResource:
		return types.WriteSetChangeTypeWriteResource
	case *types.WriteTableItem:
		return types.WriteSetChangeTypeWriteTableItem
	}
	return types.WriteSetChangeTypeUnspecified
}

func payloadType(v types.PayloadVariant) types.TransactionPayloadType {
	switch v.(type) {
	case *types.EntryFunctionPayload:
		return types.TransactionPayloadTypeEntryFunction
	case *types.ScriptPayload:
		return types.TransactionPayloadTypeScript
	case *types.WriteSetPayload:
		return types.TransactionPayloadTypeWriteSet
	case *types.MultisigPayload:
		return types.TransactionPayloadTypeMultisig
	}
	return types.TransactionPayloadTypeUnspecified
}

func signatureType(v types.SignatureVariant) types.SignatureType {
	switch v.(type) {
	case *types.Ed25519Signature:
		return types.SignatureTypeEd25519
	case *types.MultiEd25519Signature:
		return types.SignatureTypeMultiEd25519
	case *types.MultiAgentSignature:
		return types.SignatureTypeMultiAgent
	case *types.FeePayerSignature:
		return types.SignatureTypeFeePayer
	case *types.SingleSender:
		return types.SignatureTypeSingleSender
	}
	return types.SignatureTypeUnspecified
}

func accountSignatureType(v types.AccountSignatureVariant) types.AccountSignatureType {
	switch v.(type) {
	case *types.Ed25519Signature:
		return types.AccountSignatureTypeEd25519
	case *types.MultiEd25519Signature:
		return types.AccountSignatureTypeMultiEd25519
	case *types.SingleKeySignature:
		return types.AccountSignatureTypeSingleKey
	case *types.MultiKeySignature:
		return types.AccountSignatureTypeMultiKey
	}
	return types.AccountSignatureTypeUnspecified
}
