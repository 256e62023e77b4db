package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// SignatureType discriminates the transaction-level signature scheme.
// Value 5 was retired along with its field and is never produced.
type SignatureType uint32

const (
	SignatureTypeUnspecified  SignatureType = 0
	SignatureTypeEd25519      SignatureType = 1
	SignatureTypeMultiEd25519 SignatureType = 2
	SignatureTypeMultiAgent   SignatureType = 3
	SignatureTypeFeePayer     SignatureType = 4
	SignatureTypeSingleSender SignatureType = 6
)

func (t SignatureType) String() string {
	switch t {
	case SignatureTypeUnspecified:
		return "unspecified"
	case SignatureTypeEd25519:
		return "ed25519"
	case SignatureTypeMultiEd25519:
		return "multi_ed25519"
	case SignatureTypeMultiAgent:
		return "multi_agent"
	case SignatureTypeFeePayer:
		return "fee_payer"
	case SignatureTypeSingleSender:
		return "single_sender"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// SignatureVariant is the payload of a Signature.
type SignatureVariant interface {
	isSignatureVariant()
}

func (*Ed25519Signature) isSignatureVariant()      {}
func (*MultiEd25519Signature) isSignatureVariant() {}
func (*MultiAgentSignature) isSignatureVariant()   {}
func (*FeePayerSignature) isSignatureVariant()     {}
func (*SingleSender) isSignatureVariant()          {}

// Signature authenticates a user transaction.
type Signature struct {
	Type      SignatureType    // field 1
	Signature SignatureVariant // oneof signature, fields 2-5 and 7

	unknown []byte
}

func (s *Signature) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *Signature) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(s.Type))
	switch v := s.Signature.(type) {
	case nil:
	case *Ed25519Signature:
		b, err = wire.AppendMessage(b, 2, v.appendTo)
	case *MultiEd25519Signature:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	case *MultiAgentSignature:
		b, err = wire.AppendMessage(b, 4, v.appendTo)
	case *FeePayerSignature:
		b, err = wire.AppendMessage(b, 5, v.appendTo)
	case *SingleSender:
		b, err = wire.AppendMessage(b, 7, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, s.unknown...), nil
}

func (s *Signature) UnmarshalBinary(data []byte) error {
	*s = Signature{}
	setVariant := func(v SignatureVariant) error {
		if s.Signature != nil {
			return &movewire.MalformedUnionError{Union: "Signature.signature", Reason: "multiple variants populated"}
		}
		s.Signature = v
		return nil
	}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			s.Type = SignatureType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ed := new(Ed25519Signature)
			if err := ed.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ed); err != nil {
				return err
			}
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			me := new(MultiEd25519Signature)
			if err := me.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(me); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ma := new(MultiAgentSignature)
			if err := ma.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ma); err != nil {
				return err
			}
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			fp := new(FeePayerSignature)
			if err := fp.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(fp); err != nil {
				return err
			}
			data = body[vn:]
		case num == 7 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ss := new(SingleSender)
			if err := ss.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ss); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// Ed25519Signature is a single-key signature.
type Ed25519Signature struct {
	PublicKey []byte // field 1
	Signature []byte // field 2

	unknown []byte
}

func (e *Ed25519Signature) MarshalBinary() ([]byte, error) { return e.appendTo(nil) }

func (e *Ed25519Signature) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendBytes(b, 1, e.PublicKey)
	b = wire.AppendBytes(b, 2, e.Signature)
	return append(b, e.unknown...), nil
}

func (e *Ed25519Signature) UnmarshalBinary(data []byte) error {
	*e = Ed25519Signature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			e.PublicKey = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			e.Signature = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			e.unknown = append(e.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MultiEd25519Signature is a k-of-n threshold signature.
// PublicKeyIndices maps each entry of Signatures to its position in
// PublicKeys.
type MultiEd25519Signature struct {
	PublicKeys       [][]byte // field 1
	Signatures       [][]byte // field 2
	Threshold        uint32   // field 3
	PublicKeyIndices []uint32 // field 4, packed

	unknown []byte
}

func (m *MultiEd25519Signature) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MultiEd25519Signature) appendTo(b []byte) ([]byte, error) {
	for _, pk := range m.PublicKeys {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, pk)
	}
	for _, sig := range m.Signatures {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, sig)
	}
	b = wire.AppendUint32(b, 3, m.Threshold)
	b = wire.AppendPacked(b, 4, m.PublicKeyIndices)
	return append(b, m.unknown...), nil
}

// CheckThreshold enforces the structural sanity of the scheme: no more
// signatures than keys, a threshold within the key set, and every index
// in range. It does not verify any cryptography. Decode runs it
// automatically; the validate package runs it again for values built in
// memory.
func (m *MultiEd25519Signature) CheckThreshold() error {
	n := len(m.PublicKeys)
	if len(m.Signatures) > n {
		return &movewire.ThresholdError{Scheme: "multi_ed25519", Reason: "more signatures than public keys"}
	}
	if int(m.Threshold) > n {
		return &movewire.ThresholdError{Scheme: "multi_ed25519", Reason: "threshold exceeds public key count"}
	}
	for _, idx := range m.PublicKeyIndices {
		if int(idx) >= n {
			return &movewire.ThresholdError{Scheme: "multi_ed25519", Reason: "public key index out of range"}
		}
	}
	return nil
}

func (m *MultiEd25519Signature) UnmarshalBinary(data []byte) error {
	*m = MultiEd25519Signature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.PublicKeys = append(m.PublicKeys, v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.Signatures = append(m.Signatures, v)
			data = body[vn:]
		case num == 3 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			m.Threshold = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.Packed[uint32](body)
			if err != nil {
				return err
			}
			m.PublicKeyIndices = append(m.PublicKeyIndices, v...)
			data = body[vn:]
		case num == 4 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			m.PublicKeyIndices = append(m.PublicKeyIndices, v)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return m.CheckThreshold()
}

// MultiAgentSignature authenticates a transaction with secondary
// signers alongside the sender.
type MultiAgentSignature struct {
	Sender                   *AccountSignature   // field 1
	SecondarySignerAddresses []string            // field 2
	SecondarySigners         []*AccountSignature // field 3

	unknown []byte
}

func (m *MultiAgentSignature) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MultiAgentSignature) appendTo(b []byte) ([]byte, error) {
	var err error
	if m.Sender != nil {
		if b, err = wire.AppendMessage(b, 1, m.Sender.appendTo); err != nil {
			return nil, err
		}
	}
	for _, addr := range m.SecondarySignerAddresses {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, addr)
	}
	for _, s := range m.SecondarySigners {
		if b, err = wire.AppendMessage(b, 3, s.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknown...), nil
}

func (m *MultiAgentSignature) UnmarshalBinary(data []byte) error {
	*m = MultiAgentSignature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.Sender = new(AccountSignature)
			if err := m.Sender.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			m.SecondarySignerAddresses = append(m.SecondarySignerAddresses, v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s := new(AccountSignature)
			if err := s.UnmarshalBinary(v); err != nil {
				return err
			}
			m.SecondarySigners = append(m.SecondarySigners, s)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// FeePayerSignature is a multi-agent signature where a distinct fee
// payer sponsors the gas.
type FeePayerSignature struct {
	Sender                   *AccountSignature   // field 1
	SecondarySignerAddresses []string            // field 2
	SecondarySigners         []*AccountSignature // field 3
	FeePayerAddress          string              // field 4
	FeePayerSigner           *AccountSignature   // field 5

	unknown []byte
}

func (f *FeePayerSignature) MarshalBinary() ([]byte, error) { return f.appendTo(nil) }

func (f *FeePayerSignature) appendTo(b []byte) ([]byte, error) {
	var err error
	if f.Sender != nil {
		if b, err = wire.AppendMessage(b, 1, f.Sender.appendTo); err != nil {
			return nil, err
		}
	}
	for _, addr := range f.SecondarySignerAddresses {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, addr)
	}
	for _, s := range f.SecondarySigners {
		if b, err = wire.AppendMessage(b, 3, s.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendString(b, 4, f.FeePayerAddress)
	if f.FeePayerSigner != nil {
		if b, err = wire.AppendMessage(b, 5, f.FeePayerSigner.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, f.unknown...), nil
}

func (f *FeePayerSignature) UnmarshalBinary(data []byte) error {
	*f = FeePayerSignature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f.Sender = new(AccountSignature)
			if err := f.Sender.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			f.SecondarySignerAddresses = append(f.SecondarySignerAddresses, v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s := new(AccountSignature)
			if err := s.UnmarshalBinary(v); err != nil {
				return err
			}
			f.SecondarySigners = append(f.SecondarySigners, s)
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			f.FeePayerAddress = v
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f.FeePayerSigner = new(AccountSignature)
			if err := f.FeePayerSigner.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			f.unknown = append(f.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// SingleSender wraps a lone account signature of any scheme.
type SingleSender struct {
	Sender *AccountSignature // field 1

	unknown []byte
}

func (s *SingleSender) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *SingleSender) appendTo(b []byte) ([]byte, error) {
	var err error
	if s.Sender != nil {
		if b, err = wire.AppendMessage(b, 1, s.Sender.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *SingleSender) UnmarshalBinary(data []byte) error {
	*s = SingleSender{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.Sender = new(AccountSignature)
			if err := s.Sender.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// AccountSignatureType discriminates per-account signature schemes.
// Value 3 was retired along with its field and is never produced.
type AccountSignatureType uint32

const (
	AccountSignatureTypeUnspecified  AccountSignatureType = 0
	AccountSignatureTypeEd25519      AccountSignatureType = 1
	AccountSignatureTypeMultiEd25519 AccountSignatureType = 2
	AccountSignatureTypeSingleKey    AccountSignatureType = 4
	AccountSignatureTypeMultiKey     AccountSignatureType = 5
)

func (t AccountSignatureType) String() string {
	switch t {
	case AccountSignatureTypeUnspecified:
		return "unspecified"
	case AccountSignatureTypeEd25519:
		return "ed25519"
	case AccountSignatureTypeMultiEd25519:
		return "multi_ed25519"
	case AccountSignatureTypeSingleKey:
		return "single_key_signature"
	case AccountSignatureTypeMultiKey:
		return "multi_key_signature"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// AccountSignatureVariant is the payload of an AccountSignature.
type AccountSignatureVariant interface {
	isAccountSignatureVariant()
}

func (*Ed25519Signature) isAccountSignatureVariant()      {}
func (*MultiEd25519Signature) isAccountSignatureVariant() {}
func (*SingleKeySignature) isAccountSignatureVariant()    {}
func (*MultiKeySignature) isAccountSignatureVariant()     {}

// AccountSignature authenticates one account's participation.
type AccountSignature struct {
	Type      AccountSignatureType    // field 1
	Signature AccountSignatureVariant // oneof signature, fields 2-3 and 5-6

	unknown []byte
}

func (a *AccountSignature) MarshalBinary() ([]byte, error) { return a.appendTo(nil) }

func (a *AccountSignature) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(a.Type))
	switch v := a.Signature.(type) {
	case nil:
	case *Ed25519Signature:
		b, err = wire.AppendMessage(b, 2, v.appendTo)
	case *MultiEd25519Signature:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	case *SingleKeySignature:
		b, err = wire.AppendMessage(b, 5, v.appendTo)
	case *MultiKeySignature:
		b, err = wire.AppendMessage(b, 6, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, a.unknown...), nil
}

func (a *AccountSignature) UnmarshalBinary(data []byte) error {
	*a = AccountSignature{}
	setVariant := func(v AccountSignatureVariant) error {
		if a.Signature != nil {
			return &movewire.MalformedUnionError{Union: "AccountSignature.signature", Reason: "multiple variants populated"}
		}
		a.Signature = v
		return nil
	}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			a.Type = AccountSignatureType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ed := new(Ed25519Signature)
			if err := ed.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ed); err != nil {
				return err
			}
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			me := new(MultiEd25519Signature)
			if err := me.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(me); err != nil {
				return err
			}
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			sk := new(SingleKeySignature)
			if err := sk.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(sk); err != nil {
				return err
			}
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			mk := new(MultiKeySignature)
			if err := mk.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(mk); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			a.unknown = append(a.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// AnyPublicKeyType names the key scheme of an AnyPublicKey.
type AnyPublicKeyType uint32

const (
	AnyPublicKeyTypeUnspecified    AnyPublicKeyType = 0
	AnyPublicKeyTypeEd25519        AnyPublicKeyType = 1
	AnyPublicKeyTypeSecp256k1Ecdsa AnyPublicKeyType = 2
	AnyPublicKeyTypeSecp256r1Ecdsa AnyPublicKeyType = 3
	AnyPublicKeyTypeOIDB           AnyPublicKeyType = 4
)

// AnyPublicKey is a scheme-tagged public key.
type AnyPublicKey struct {
	Type      AnyPublicKeyType // field 1
	PublicKey []byte           // field 2

	unknown []byte
}

func (k *AnyPublicKey) MarshalBinary() ([]byte, error) { return k.appendTo(nil) }

func (k *AnyPublicKey) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendUint32(b, 1, uint32(k.Type))
	b = wire.AppendBytes(b, 2, k.PublicKey)
	return append(b, k.unknown...), nil
}

func (k *AnyPublicKey) UnmarshalBinary(data []byte) error {
	*k = AnyPublicKey{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			k.Type = AnyPublicKeyType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			k.PublicKey = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			k.unknown = append(k.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// AnySignatureType names the scheme of an AnySignature.
type AnySignatureType uint32

const (
	AnySignatureTypeUnspecified    AnySignatureType = 0
	AnySignatureTypeEd25519        AnySignatureType = 1
	AnySignatureTypeSecp256k1Ecdsa AnySignatureType = 2
	AnySignatureTypeWebAuthn       AnySignatureType = 3
	AnySignatureTypeOIDB           AnySignatureType = 4
)

// AnySignatureVariant is the scheme-specific content of an
// AnySignature.
type AnySignatureVariant interface {
	isAnySignatureVariant()
}

func (*Ed25519) isAnySignatureVariant()        {}
func (*Secp256k1Ecdsa) isAnySignatureVariant() {}
func (*WebAuthn) isAnySignatureVariant()       {}
func (*OIDB) isAnySignatureVariant()           {}

// Ed25519 carries raw ed25519 signature bytes.
type Ed25519 struct {
	Signature []byte // field 1

	unknown []byte
}

// Secp256k1Ecdsa carries raw secp256k1 ECDSA signature bytes.
type Secp256k1Ecdsa struct {
	Signature []byte // field 1

	unknown []byte
}

// WebAuthn carries a WebAuthn assertion.
type WebAuthn struct {
	Signature []byte // field 1

	unknown []byte
}

// OIDB carries an OpenID-blinded signature.
type OIDB struct {
	Signature []byte // field 1

	unknown []byte
}

func (e *Ed25519) MarshalBinary() ([]byte, error) { return e.appendTo(nil) }
func (e *Ed25519) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendBytes(b, 1, e.Signature)
	return append(b, e.unknown...), nil
}
func (e *Ed25519) UnmarshalBinary(data []byte) error {
	*e = Ed25519{}
	return unmarshalRawSignature(data, &e.Signature, &e.unknown)
}

func (s *Secp256k1Ecdsa) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }
func (s *Secp256k1Ecdsa) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendBytes(b, 1, s.Signature)
	return append(b, s.unknown...), nil
}
func (s *Secp256k1Ecdsa) UnmarshalBinary(data []byte) error {
	*s = Secp256k1Ecdsa{}
	return unmarshalRawSignature(data, &s.Signature, &s.unknown)
}

func (w *WebAuthn) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }
func (w *WebAuthn) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendBytes(b, 1, w.Signature)
	return append(b, w.unknown...), nil
}
func (w *WebAuthn) UnmarshalBinary(data []byte) error {
	*w = WebAuthn{}
	return unmarshalRawSignature(data, &w.Signature, &w.unknown)
}

func (o *OIDB) MarshalBinary() ([]byte, error) { return o.appendTo(nil) }
func (o *OIDB) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendBytes(b, 1, o.Signature)
	return append(b, o.unknown...), nil
}
func (o *OIDB) UnmarshalBinary(data []byte) error {
	*o = OIDB{}
	return unmarshalRawSignature(data, &o.Signature, &o.unknown)
}

// unmarshalRawSignature decodes the single-bytes-field shape shared by
// the AnySignature content messages.
func unmarshalRawSignature(data []byte, sig *[]byte, unknown *[]byte) error {
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		if num == 1 && typ == protowire.BytesType {
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			*sig = v
			data = body[vn:]
			continue
		}
		vn, err := wire.Skip(num, typ, body)
		if err != nil {
			return err
		}
		*unknown = append(*unknown, data[:n+vn]...)
		data = body[vn:]
	}
	return nil
}

// AnySignature is a scheme-tagged signature. The flat Signature field
// is the older representation; producers now populate the typed
// variant, but both forms are decoded and re-emitted for
// compatibility.
type AnySignature struct {
	Type      AnySignatureType    // field 1
	Signature []byte              // field 2, superseded by Variant
	Variant   AnySignatureVariant // oneof signature_variant, fields 3-6

	unknown []byte
}

func (s *AnySignature) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *AnySignature) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(s.Type))
	b = wire.AppendBytes(b, 2, s.Signature)
	switch v := s.Variant.(type) {
	case nil:
	case *Ed25519:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	case *Secp256k1Ecdsa:
		b, err = wire.AppendMessage(b, 4, v.appendTo)
	case *WebAuthn:
		b, err = wire.AppendMessage(b, 5, v.appendTo)
	case *OIDB:
		b, err = wire.AppendMessage(b, 6, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, s.unknown...), nil
}

func (s *AnySignature) UnmarshalBinary(data []byte) error {
	*s = AnySignature{}
	setVariant := func(v AnySignatureVariant) error {
		if s.Variant != nil {
			return &movewire.MalformedUnionError{Union: "AnySignature.signature_variant", Reason: "multiple variants populated"}
		}
		s.Variant = v
		return nil
	}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			s.Type = AnySignatureType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.Signature = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ed := new(Ed25519)
			if err := ed.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ed); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			se := new(Secp256k1Ecdsa)
			if err := se.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(se); err != nil {
				return err
			}
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			wa := new(WebAuthn)
			if err := wa.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(wa); err != nil {
				return err
			}
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ob := new(OIDB)
			if err := ob.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(ob); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// SingleKeySignature pairs one key with one signature.
type SingleKeySignature struct {
	PublicKey *AnyPublicKey // field 1
	Signature *AnySignature // field 2

	unknown []byte
}

func (s *SingleKeySignature) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *SingleKeySignature) appendTo(b []byte) ([]byte, error) {
	var err error
	if s.PublicKey != nil {
		if b, err = wire.AppendMessage(b, 1, s.PublicKey.appendTo); err != nil {
			return nil, err
		}
	}
	if s.Signature != nil {
		if b, err = wire.AppendMessage(b, 2, s.Signature.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *SingleKeySignature) UnmarshalBinary(data []byte) error {
	*s = SingleKeySignature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.PublicKey = new(AnyPublicKey)
			if err := s.PublicKey.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.Signature = new(AnySignature)
			if err := s.Signature.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// IndexedSignature binds a signature to the public key at Index.
type IndexedSignature struct {
	Index     uint32        // field 1
	Signature *AnySignature // field 2

	unknown []byte
}

func (s *IndexedSignature) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *IndexedSignature) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, s.Index)
	if s.Signature != nil {
		if b, err = wire.AppendMessage(b, 2, s.Signature.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *IndexedSignature) UnmarshalBinary(data []byte) error {
	*s = IndexedSignature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			s.Index = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.Signature = new(AnySignature)
			if err := s.Signature.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MultiKeySignature is a k-of-n scheme over heterogeneous key types.
type MultiKeySignature struct {
	PublicKeys         []*AnyPublicKey     // field 1
	Signatures         []*IndexedSignature // field 2
	SignaturesRequired uint32              // field 3

	unknown []byte
}

func (m *MultiKeySignature) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MultiKeySignature) appendTo(b []byte) ([]byte, error) {
	var err error
	for _, pk := range m.PublicKeys {
		if b, err = wire.AppendMessage(b, 1, pk.appendTo); err != nil {
			return nil, err
		}
	}
	for _, sig := range m.Signatures {
		if b, err = wire.AppendMessage(b, 2, sig.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendUint32(b, 3, m.SignaturesRequired)
	return append(b, m.unknown...), nil
}

// CheckThreshold enforces the structural sanity of the scheme. It does
// not verify any cryptography.
func (m *MultiKeySignature) CheckThreshold() error {
	n := len(m.PublicKeys)
	if len(m.Signatures) > n {
		return &movewire.ThresholdError{Scheme: "multi_key", Reason: "more signatures than public keys"}
	}
	if int(m.SignaturesRequired) > n {
		return &movewire.ThresholdError{Scheme: "multi_key", Reason: "signatures_required exceeds public key count"}
	}
	for _, sig := range m.Signatures {
		if int(sig.Index) >= n {
			return &movewire.ThresholdError{Scheme: "multi_key", Reason: "signature index out of range"}
		}
	}
	return nil
}

func (m *MultiKeySignature) UnmarshalBinary(data []byte) error {
	*m = MultiKeySignature{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			pk := new(AnyPublicKey)
			if err := pk.UnmarshalBinary(v); err != nil {
				return err
			}
			m.PublicKeys = append(m.PublicKeys, pk)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			sig := new(IndexedSignature)
			if err := sig.UnmarshalBinary(v); err != nil {
				return err
			}
			m.Signatures = append(m.Signatures, sig)
			data = body[vn:]
		case num == 3 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			m.SignaturesRequired = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return m.CheckThreshold()
}
