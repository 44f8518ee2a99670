package protocol

// ResourceDefinition describes one of the bridge's three fixed,
// read-only resources (§4.3).
type ResourceDefinition struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourcesListResult is the result payload of a resources/list response.
type ResourcesListResult struct {
	Resources []ResourceDefinition `json:"resources"`
}
