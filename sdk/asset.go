package sdk

type Asset string

const (
	// AssetWei is the external settlement currency backing the bonding curve pool.
	AssetWei Asset = "wei"
	// AssetToken is the bonding-curve minted marketplace token.
	AssetToken Asset = "token"
	// AssetReputation is the non-transferable work credit.
	AssetReputation Asset = "reputation"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetWei.String()
func (a Asset) String() string {
	return string(a)
}
