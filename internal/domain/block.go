package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// BlockKind is the discriminator of a block payload.
type BlockKind string

// Block kinds, in the form they are persisted.
const (
	KindAccountCreation           BlockKind = "account_creation"
	KindUserTimezoneUpdate        BlockKind = "user_timezone_update"
	KindGuildTimezoneUpdate       BlockKind = "guild_timezone_update"
	KindGuildSystemChannelUpdate  BlockKind = "guild_system_channel_update"
	KindGuildForbesChannelUpdate  BlockKind = "guild_forbes_channel_update"
	KindEventGiveaway             BlockKind = "event_giveaway"
	KindAssetUpload               BlockKind = "asset_upload"
	KindNewDay                    BlockKind = "new_day"
	KindMining                    BlockKind = "mining"
	KindTransfer                  BlockKind = "transfer"
	KindSwagBlocking              BlockKind = "swag_blocking"
	KindSwagRelease               BlockKind = "swag_release"
	KindImmunityUpdate            BlockKind = "immunity_update"
	KindCagnotteCreation          BlockKind = "cagnotte_creation"
	KindCagnotteContribution      BlockKind = "cagnotte_contribution"
	KindCagnotteDisbursement      BlockKind = "cagnotte_disbursement"
	KindCagnotteShare             BlockKind = "cagnotte_share"
	KindCagnotteLottery           BlockKind = "cagnotte_lottery"
	KindCagnotteRename            BlockKind = "cagnotte_rename"
	KindCagnotteParticipantsReset BlockKind = "cagnotte_participants_reset"
	KindCagnotteDestruction       BlockKind = "cagnotte_destruction"
	KindLooting                   BlockKind = "looting"
	KindFiredamp                  BlockKind = "firedamp"
	KindTaxEvasion                BlockKind = "tax_evasion"
)

// Payload is the kind-specific content of a block. Implementations are
// value types and must not be mutated once part of a block.
type Payload interface {
	Kind() BlockKind
}

// Block is an immutable, timestamped record of one state-changing intent.
type Block struct {
	Timestamp time.Time
	Issuer    UserID
	Payload   Payload
}

// Kind returns the kind of the block payload.
func (b Block) Kind() BlockKind {
	if b.Payload == nil {
		return ""
	}

	return b.Payload.Kind()
}

// ID returns the identity of b.
func (b Block) ID() BlockID {
	return BlockID{Timestamp: b.Timestamp, Issuer: b.Issuer}
}

// BlockID identifies a block by its timestamp and issuer.
type BlockID struct {
	Timestamp time.Time `json:"timestamp"`
	Issuer    UserID    `json:"issuer"`
}

// Equal reports whether id and o name the same block.
func (id BlockID) Equal(o BlockID) bool {
	return id.Issuer == o.Issuer && id.Timestamp.Equal(o.Timestamp)
}

func (id BlockID) String() string {
	return fmt.Sprintf("%s@%d", id.Timestamp.UTC().Format(time.RFC3339Nano), id.Issuer)
}

// AccountCreation registers a personal account.
type AccountCreation struct {
	User     UserID  `json:"user"`
	Guild    GuildID `json:"guild"`
	Timezone string  `json:"timezone"`
}

// UserTimezoneUpdate changes the time zone of an account.
type UserTimezoneUpdate struct {
	User     UserID `json:"user"`
	Timezone string `json:"timezone"`
}

// GuildTimezoneUpdate changes the default time zone of a guild.
type GuildTimezoneUpdate struct {
	Guild    GuildID `json:"guild"`
	Timezone string  `json:"timezone"`
}

// GuildSystemChannelUpdate sets the channel used for announcements.
type GuildSystemChannelUpdate struct {
	Guild   GuildID   `json:"guild"`
	Channel ChannelID `json:"channel"`
}

// GuildForbesChannelUpdate sets the channel the ranking is published in.
type GuildForbesChannelUpdate struct {
	Guild   GuildID   `json:"guild"`
	Channel ChannelID `json:"channel"`
}

// EventGiveaway credits an account out of thin air.
type EventGiveaway struct {
	User   UserID             `json:"user"`
	Amount currencypkg.Amount `json:"amount"`
}

// AssetUpload records where a named asset lives.
type AssetUpload struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

// NewDay marks a day rollover.
type NewDay struct{}

// Mining credits the daily mining reward.
type Mining struct {
	User   UserID           `json:"user"`
	Amount currencypkg.Swag `json:"amount"`
}

// Transfer moves an amount between two personal accounts.
type Transfer struct {
	From   UserID             `json:"from"`
	To     UserID             `json:"to"`
	Amount currencypkg.Amount `json:"amount"`
}

// SwagBlocking stakes Swag for a number of days.
type SwagBlocking struct {
	User   UserID           `json:"user"`
	Amount currencypkg.Swag `json:"amount"`
	Days   int              `json:"days"`
}

// SwagRelease returns a matured stake and its accrued Style.
type SwagRelease struct {
	User UserID `json:"user"`
}

// ImmunityUpdate grants or revokes immunity to a power.
type ImmunityUpdate struct {
	Target Address   `json:"target"`
	Power  PowerKind `json:"power"`
	Immune bool      `json:"immune"`
}

// CagnotteCreation opens a pooled fund managed by its creator.
//
// A zero ID is filled in by the ledger on append; the stored block keeps it.
type CagnotteCreation struct {
	ID       CagnotteID       `json:"id"`
	Creator  UserID           `json:"creator"`
	Name     string           `json:"name"`
	Currency currencypkg.Kind `json:"currency"`
}

// CagnotteContribution moves an amount from a user into a cagnotte.
type CagnotteContribution struct {
	User     UserID             `json:"user"`
	Cagnotte CagnotteID         `json:"cagnotte"`
	Amount   currencypkg.Amount `json:"amount"`
}

// CagnotteDisbursement moves an amount from a cagnotte to a user.
type CagnotteDisbursement struct {
	Requester UserID             `json:"requester"`
	Cagnotte  CagnotteID         `json:"cagnotte"`
	Recipient UserID             `json:"recipient"`
	Amount    currencypkg.Amount `json:"amount"`
}

// CagnotteShare splits the whole cagnotte balance between participants.
// An empty list means the recorded participants.
type CagnotteShare struct {
	Requester    UserID     `json:"requester"`
	Cagnotte     CagnotteID `json:"cagnotte"`
	Participants []UserID   `json:"participants"`
}

// CagnotteLottery gives the whole cagnotte balance to one participant picked
// with Seed. An empty list means the recorded participants.
type CagnotteLottery struct {
	Requester    UserID     `json:"requester"`
	Cagnotte     CagnotteID `json:"cagnotte"`
	Participants []UserID   `json:"participants"`
	Seed         int64      `json:"seed"`
}

// CagnotteRename changes the name of a cagnotte.
type CagnotteRename struct {
	Requester UserID     `json:"requester"`
	Cagnotte  CagnotteID `json:"cagnotte"`
	Name      string     `json:"name"`
}

// CagnotteParticipantsReset clears the recorded participants.
type CagnotteParticipantsReset struct {
	Requester UserID     `json:"requester"`
	Cagnotte  CagnotteID `json:"cagnotte"`
}

// CagnotteDestruction closes an empty cagnotte.
type CagnotteDestruction struct {
	Requester UserID     `json:"requester"`
	Cagnotte  CagnotteID `json:"cagnotte"`
}

// Looting takes Charge Swag from other accounts for Owner. Sink is drained
// when the per-account cut rounds to zero.
type Looting struct {
	Owner  UserID `json:"owner"`
	Charge uint64 `json:"charge"`
	Sink   UserID `json:"sink"`
}

// Firedamp delays the mining of other accounts by Stylog(Charge) days.
type Firedamp struct {
	Owner  UserID `json:"owner"`
	Charge uint64 `json:"charge"`
}

// TaxEvasion credits Owner with extra mining rolls drawn at issue time.
type TaxEvasion struct {
	Owner  UserID   `json:"owner"`
	Charge uint64   `json:"charge"`
	Rolls  []uint64 `json:"rolls"`
}

func (AccountCreation) Kind() BlockKind           { return KindAccountCreation }
func (UserTimezoneUpdate) Kind() BlockKind        { return KindUserTimezoneUpdate }
func (GuildTimezoneUpdate) Kind() BlockKind       { return KindGuildTimezoneUpdate }
func (GuildSystemChannelUpdate) Kind() BlockKind  { return KindGuildSystemChannelUpdate }
func (GuildForbesChannelUpdate) Kind() BlockKind  { return KindGuildForbesChannelUpdate }
func (EventGiveaway) Kind() BlockKind             { return KindEventGiveaway }
func (AssetUpload) Kind() BlockKind               { return KindAssetUpload }
func (NewDay) Kind() BlockKind                    { return KindNewDay }
func (Mining) Kind() BlockKind                    { return KindMining }
func (Transfer) Kind() BlockKind                  { return KindTransfer }
func (SwagBlocking) Kind() BlockKind              { return KindSwagBlocking }
func (SwagRelease) Kind() BlockKind               { return KindSwagRelease }
func (ImmunityUpdate) Kind() BlockKind            { return KindImmunityUpdate }
func (CagnotteCreation) Kind() BlockKind          { return KindCagnotteCreation }
func (CagnotteContribution) Kind() BlockKind      { return KindCagnotteContribution }
func (CagnotteDisbursement) Kind() BlockKind      { return KindCagnotteDisbursement }
func (CagnotteShare) Kind() BlockKind             { return KindCagnotteShare }
func (CagnotteLottery) Kind() BlockKind           { return KindCagnotteLottery }
func (CagnotteRename) Kind() BlockKind            { return KindCagnotteRename }
func (CagnotteParticipantsReset) Kind() BlockKind { return KindCagnotteParticipantsReset }
func (CagnotteDestruction) Kind() BlockKind       { return KindCagnotteDestruction }
func (Looting) Kind() BlockKind                   { return KindLooting }
func (Firedamp) Kind() BlockKind                  { return KindFiredamp }
func (TaxEvasion) Kind() BlockKind                { return KindTaxEvasion }

// NewCagnotteShare returns a share payload owning a copy of participants.
func NewCagnotteShare(requester UserID, id CagnotteID, participants []UserID) CagnotteShare {
	return CagnotteShare{Requester: requester, Cagnotte: id, Participants: slices.Clone(participants)}
}

// NewCagnotteLottery returns a lottery payload owning a copy of participants.
func NewCagnotteLottery(requester UserID, id CagnotteID, participants []UserID, seed int64) CagnotteLottery {
	return CagnotteLottery{
		Requester:    requester,
		Cagnotte:     id,
		Participants: slices.Clone(participants),
		Seed:         seed,
	}
}
