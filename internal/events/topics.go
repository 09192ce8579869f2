package events

const (
	TopicCatalogSaved    = "catalog.saved"
	TopicCheckoutStarted = "storefront.checkout.started"
)

// PartitionKey keeps every event of one catalog (or store) on one partition.
func PartitionKey(id string) []byte { return []byte(id) }
