// ABOUTME: Built-in site identity used by SEO metadata, sitemap and manifest
// ABOUTME: Only the site URL is overridable from the environment

package config

func defaultSite() SiteConfig {
	return SiteConfig{
		Name:               "Polytrack",
		URL:                "https://polytrack2.com",
		DefaultTitle:       "Polytrack - Play Now",
		DefaultDescription: "Discover and play Polytrack game instantly in your browser. No downloads required - just click and play!",
		DefaultLocale:      "en",
		LogoPath:           "/images/logo.png",
		ThemeColor:         "#FE2E36",
		ContactEmail:       "support@polytrack2.com",
	}
}
