package reference

import (
	"github.com/sahilm/fuzzy"
)

// RPCMethod describes one Bitcoin Core RPC call offered by the simulator picker.
type RPCMethod struct {
	Name        string
	Description string
	Category    string
}

// GenesisBlockHash is the mainnet genesis block, used by the default batch.
const GenesisBlockHash = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

var commonMethods = []RPCMethod{
	{Name: "getblockchaininfo", Description: "Returns an object containing various state info regarding blockchain processing.", Category: "Blockchain"},
	{Name: "getbestblockhash", Description: "Returns the hash of the best (tip) block in the longest block chain.", Category: "Blockchain"},
	{Name: "getblock", Description: "Returns details of a block with given blockhash.", Category: "Blockchain"},
	{Name: "getrawtransaction", Description: "Returns the raw transaction data.", Category: "Raw Transactions"},
	{Name: "getmempoolinfo", Description: "Returns details on the active state of the TX memory pool.", Category: "Blockchain"},
	{Name: "getwalletinfo", Description: "Returns an object containing various wallet state info.", Category: "Wallet"},
	{Name: "getnewaddress", Description: "Returns a new Bitcoin address for receiving payments.", Category: "Wallet"},
	{Name: "sendtoaddress", Description: "Send an amount to a given address.", Category: "Wallet"},
	{Name: "addnewaddress", Description: "Returns a new Bitcoin address for receiving payments.", Category: "Wallet"},
}

// ExamplePrompt is a canned task description for the script generator.
type ExamplePrompt struct {
	Label string
	Task  string
}

var examplePrompts = []ExamplePrompt{
	{Label: "Batch Fetch", Task: "Batch fetch the last 10 blocks and print their transaction counts."},
	{Label: "Network Info", Task: "Get network info and print the number of connections with a timestamp log."},
}

// Methods returns the method catalog in its fixed order.
// The returned slice is a copy; callers may modify it freely.
func Methods() []RPCMethod {
	out := make([]RPCMethod, len(commonMethods))
	copy(out, commonMethods)
	return out
}

// FindMethod looks up a catalog entry by exact name.
func FindMethod(name string) (RPCMethod, bool) {
	for _, m := range commonMethods {
		if m.Name == name {
			return m, true
		}
	}
	return RPCMethod{}, false
}

// FilterMethods fuzzy-matches query against method names and descriptions,
// best match first. An empty query returns the whole catalog.
func FilterMethods(query string) []RPCMethod {
	if query == "" {
		return Methods()
	}

	targets := make([]string, len(commonMethods))
	for i, m := range commonMethods {
		targets[i] = m.Name + " " + m.Description
	}

	matches := fuzzy.Find(query, targets)
	out := make([]RPCMethod, len(matches))
	for i, match := range matches {
		out[i] = commonMethods[match.Index]
	}
	return out
}

// Categories returns the distinct method categories in first-seen order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range commonMethods {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// MethodsInCategory returns the catalog entries of one category in catalog order.
func MethodsInCategory(category string) []RPCMethod {
	var out []RPCMethod
	for _, m := range commonMethods {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// ExamplePrompts returns the generator's canned task descriptions.
func ExamplePrompts() []ExamplePrompt {
	out := make([]ExamplePrompt, len(examplePrompts))
	copy(out, examplePrompts)
	return out
}
