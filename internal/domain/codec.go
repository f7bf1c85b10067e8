package domain

import (
	"fmt"
	"time"

	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

type blockJSON struct {
	Timestamp time.Time          `json:"timestamp"`
	Issuer    UserID             `json:"issuer"`
	Kind      BlockKind          `json:"kind"`
	Payload   jsonpkg.RawMessage `json:"payload"`
}

// MarshalJSON encodes b as {"timestamp","issuer","kind","payload"}.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.Payload == nil {
		return nil, ErrUnknownBlockKind
	}

	payload, err := jsonpkg.Marshal(b.Payload)
	if err != nil {
		return nil, err
	}

	return jsonpkg.Marshal(blockJSON{
		Timestamp: b.Timestamp.UTC(),
		Issuer:    b.Issuer,
		Kind:      b.Payload.Kind(),
		Payload:   payload,
	})
}

// UnmarshalJSON decodes a block encoded by MarshalJSON.
func (b *Block) UnmarshalJSON(data []byte) error {
	var v blockJSON
	if err := jsonpkg.Unmarshal(data, &v); err != nil {
		return err
	}

	p, err := DecodePayload(v.Kind, v.Payload)
	if err != nil {
		return err
	}

	*b = Block{Timestamp: v.Timestamp.UTC(), Issuer: v.Issuer, Payload: p}

	return nil
}

// DecodePayload decodes the payload of a block of kind k.
func DecodePayload(k BlockKind, raw []byte) (Payload, error) {
	switch k {
	case KindAccountCreation:
		return decode[AccountCreation](raw)
	case KindUserTimezoneUpdate:
		return decode[UserTimezoneUpdate](raw)
	case KindGuildTimezoneUpdate:
		return decode[GuildTimezoneUpdate](raw)
	case KindGuildSystemChannelUpdate:
		return decode[GuildSystemChannelUpdate](raw)
	case KindGuildForbesChannelUpdate:
		return decode[GuildForbesChannelUpdate](raw)
	case KindEventGiveaway:
		return decode[EventGiveaway](raw)
	case KindAssetUpload:
		return decode[AssetUpload](raw)
	case KindNewDay:
		return decode[NewDay](raw)
	case KindMining:
		return decode[Mining](raw)
	case KindTransfer:
		return decode[Transfer](raw)
	case KindSwagBlocking:
		return decode[SwagBlocking](raw)
	case KindSwagRelease:
		return decode[SwagRelease](raw)
	case KindImmunityUpdate:
		return decode[ImmunityUpdate](raw)
	case KindCagnotteCreation:
		return decode[CagnotteCreation](raw)
	case KindCagnotteContribution:
		return decode[CagnotteContribution](raw)
	case KindCagnotteDisbursement:
		return decode[CagnotteDisbursement](raw)
	case KindCagnotteShare:
		return decode[CagnotteShare](raw)
	case KindCagnotteLottery:
		return decode[CagnotteLottery](raw)
	case KindCagnotteRename:
		return decode[CagnotteRename](raw)
	case KindCagnotteParticipantsReset:
		return decode[CagnotteParticipantsReset](raw)
	case KindCagnotteDestruction:
		return decode[CagnotteDestruction](raw)
	case KindLooting:
		return decode[Looting](raw)
	case KindFiredamp:
		return decode[Firedamp](raw)
	case KindTaxEvasion:
		return decode[TaxEvasion](raw)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBlockKind, k)
}

func decode[T Payload](raw []byte) (Payload, error) {
	var p T
	if err := jsonpkg.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	return p, nil
}
