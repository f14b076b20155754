package affiliate

import "net/url"

const amazonSearchBase = "https://www.amazon.in/s"

// BuildAmazonSearchLink builds a compliant Amazon affiliate search URL for
// the query. Pure string construction; no scraping, no API.
func BuildAmazonSearchLink(query, tag string) string {
	v := url.Values{}
	v.Set("k", query)
	v.Set("tag", tag)
	return amazonSearchBase + "?" + v.Encode()
}
