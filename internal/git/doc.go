// Package git reads repository metadata from the local .git directory.
//
// It is used to default the GitHub owner and repository from the origin
// remote. Nothing here touches the network.
package git
