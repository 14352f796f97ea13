package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"rico_contracts/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) string() string { return w.buf.String() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

var errUnexpectedEOF = errors.New("unexpected EOF")

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data string) *binReader {
	return &binReader{data: []byte(data)}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errUnexpectedEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if uint64(len(r.data)-r.pos) < l {
		return "", errUnexpectedEOF
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// done rejects trailing garbage, which would mean the layout drifted.
func (r *binReader) done() error {
	if r.pos != len(r.data) {
		return fmt.Errorf("%d trailing bytes", len(r.data)-r.pos)
	}
	return nil
}

// decodeAll runs every step in order and stops at the first failure. Keeps
// the decoders below readable instead of a wall of if err != nil.
func decodeAll(r *binReader, what string, steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("%w: decode %s: %w", ErrCorruptState, what, err)
		}
	}
	if err := r.done(); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrCorruptState, what, err)
	}
	return nil
}

func intoAmount(r *binReader, dst *Amount) func() error {
	return func() (err error) { *dst, err = r.readAmount(); return }
}

func intoInt64(r *binReader, dst *int64) func() error {
	return func() (err error) { *dst, err = r.readInt64(); return }
}

func intoBool(r *binReader, dst *bool) func() error {
	return func() (err error) { *dst, err = r.readBool(); return }
}

func intoAddress(r *binReader, dst *sdk.Address) func() error {
	return func() (err error) { *dst, err = r.readAddress(); return }
}

func intoString(r *binReader, dst *string) func() error {
	return func() (err error) { *dst, err = r.readString(); return }
}

// ------------------------------------------------------------------
// Records
// ------------------------------------------------------------------

// EncodeCampaignConfig packs the immutable campaign parameters.
func EncodeCampaignConfig(cfg *CampaignConfig) string {
	w := newWriter()
	w.buf.WriteByte(byte(cfg.Stage))
	w.writeInt64(cfg.StartTime)
	w.writeInt64(cfg.Period)
	w.writeAddress(cfg.Wallet)
	w.writeAddress(cfg.Token)
	w.writeAddress(cfg.Presale)
	w.writeAmount(cfg.MinimumInvestment)
	w.writeAmount(cfg.SoftCap)
	w.writeAmount(cfg.HardCap)
	w.writeAmount(cfg.Rate)
	w.writeInt64(cfg.RefundDelay)
	w.writeInt64(cfg.RefundPeriod)
	w.writeAmount(cfg.ReserveBps)
	return w.string()
}

func DecodeCampaignConfig(data string) (*CampaignConfig, error) {
	r := newReader(data)
	cfg := &CampaignConfig{}
	err := decodeAll(r, "campaign config",
		func() error {
			b, err := r.readByte()
			cfg.Stage = Stage(b)
			return err
		},
		intoInt64(r, &cfg.StartTime),
		intoInt64(r, &cfg.Period),
		intoAddress(r, &cfg.Wallet),
		intoAddress(r, &cfg.Token),
		intoAddress(r, &cfg.Presale),
		intoAmount(r, &cfg.MinimumInvestment),
		intoAmount(r, &cfg.SoftCap),
		intoAmount(r, &cfg.HardCap),
		intoAmount(r, &cfg.Rate),
		intoInt64(r, &cfg.RefundDelay),
		intoInt64(r, &cfg.RefundPeriod),
		intoAmount(r, &cfg.ReserveBps),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeCampaignTotals packs the mutable counters that change on every contribution.
func EncodeCampaignTotals(t *CampaignTotals) string {
	w := newWriter()
	w.writeAmount(t.WeiRaised)
	w.writeAmount(t.ReservedWei)
	w.writeAmount(t.SettledWei)
	w.writeAmount(t.PresaleCredit)
	w.writeBool(t.CapReached)
	w.writeBool(t.Finalized)
	w.writeVarUint(t.Contributors)
	return w.string()
}

func DecodeCampaignTotals(data string) (*CampaignTotals, error) {
	r := newReader(data)
	t := &CampaignTotals{}
	err := decodeAll(r, "campaign totals",
		intoAmount(r, &t.WeiRaised),
		intoAmount(r, &t.ReservedWei),
		intoAmount(r, &t.SettledWei),
		intoAmount(r, &t.PresaleCredit),
		intoBool(r, &t.CapReached),
		intoBool(r, &t.Finalized),
		func() (err error) { t.Contributors, err = r.readVarUint(); return },
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func EncodeDividendTotals(t *DividendTotals) string {
	w := newWriter()
	w.writeAmount(t.Pool)
	w.writeAmount(t.TotalClaimed)
	return w.string()
}

func DecodeDividendTotals(data string) (*DividendTotals, error) {
	r := newReader(data)
	t := &DividendTotals{}
	err := decodeAll(r, "dividend totals",
		intoAmount(r, &t.Pool),
		intoAmount(r, &t.TotalClaimed),
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func EncodeEscrowConfig(cfg *EscrowConfig) string {
	w := newWriter()
	w.writeInt64(cfg.MaxDelay)
	w.writeInt64(cfg.DelayUnit)
	return w.string()
}

func DecodeEscrowConfig(data string) (*EscrowConfig, error) {
	r := newReader(data)
	cfg := &EscrowConfig{}
	err := decodeAll(r, "escrow config",
		intoInt64(r, &cfg.MaxDelay),
		intoInt64(r, &cfg.DelayUnit),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeDeposit serializes one escrow record.
func EncodeDeposit(d *Deposit) string {
	w := newWriter()
	w.writeAmount(d.Amount)
	w.writeInt64(d.DepositedAt)
	w.writeInt64(d.UnlockAt)
	return w.string()
}

func DecodeDeposit(data string) (*Deposit, error) {
	r := newReader(data)
	d := &Deposit{}
	err := decodeAll(r, "deposit",
		intoAmount(r, &d.Amount),
		intoInt64(r, &d.DepositedAt),
		intoInt64(r, &d.UnlockAt),
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func EncodeTokenConfig(cfg *TokenConfig) string {
	w := newWriter()
	w.writeString(cfg.Name)
	w.writeString(cfg.Symbol)
	return w.string()
}

func DecodeTokenConfig(data string) (*TokenConfig, error) {
	r := newReader(data)
	cfg := &TokenConfig{}
	err := decodeAll(r, "token config",
		intoString(r, &cfg.Name),
		intoString(r, &cfg.Symbol),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
