package settingsrouter

// DefaultTable returns the settings route table.
// Page keys match the PageVisibility names used by the settings UI
// (appearance, autofill, defaultBrowser, onStartup, reset, ...).
func DefaultTable() Table {
	return Table{
		{Name: "BASIC", Path: "/"},
		{Name: "ADVANCED", Path: "/advanced", Kind: KindGroup, Forward: "BASIC"},
		{Name: "ABOUT", Path: "/help"},

		{Name: "PEOPLE", Parent: "BASIC", Path: "/people", Kind: KindSection, Section: "people", Page: "people"},
		{Name: "SYNC", Parent: "PEOPLE", Path: "/syncSetup", Kind: KindSubpage},
		{Name: "SYNC_ADVANCED", Parent: "SYNC", Path: "advanced", Kind: KindSubpage},
		{Name: "SIGN_OUT", Parent: "PEOPLE", Path: "/signOut", Kind: KindDialog},
		{Name: "IMPORT_DATA", Parent: "PEOPLE", Path: "/importData", Kind: KindDialog},

		{Name: "AUTOFILL", Parent: "BASIC", Path: "/autofill", Kind: KindSection, Section: "autofill", Page: "autofill"},
		{Name: "PASSWORDS", Parent: "AUTOFILL", Path: "/passwords", Kind: KindSubpage},
		{Name: "CHECK_PASSWORDS", Parent: "PASSWORDS", Path: "check", Kind: KindSubpage},
		{Name: "PAYMENTS", Parent: "AUTOFILL", Path: "/payments", Kind: KindSubpage},
		{Name: "ADDRESSES", Parent: "AUTOFILL", Path: "/addresses", Kind: KindSubpage},

		{Name: "SAFETY_CHECK", Parent: "BASIC", Path: "/safetyCheck", Kind: KindSection, Section: "safetyCheck", Page: "safetyCheck"},

		{Name: "PRIVACY", Parent: "BASIC", Path: "/privacy", Kind: KindSection, Section: "privacy", Page: "privacy"},
		{Name: "CLEAR_BROWSER_DATA", Parent: "PRIVACY", Path: "/clearBrowserData", Kind: KindDialog},
		{Name: "SECURITY", Parent: "PRIVACY", Path: "/security", Kind: KindSubpage},
		{Name: "SECURE_DNS", Parent: "SECURITY", Path: "secureDns", Kind: KindSubpage},
		{Name: "COOKIES", Parent: "PRIVACY", Path: "/cookies", Kind: KindSubpage},
		{Name: "SITE_SETTINGS", Parent: "PRIVACY", Path: "/content", Kind: KindSubpage},
		{Name: "SITE_SETTINGS_ALL", Parent: "SITE_SETTINGS", Path: "all", Kind: KindSubpage},
		{Name: "SITE_SETTINGS_SITE_DETAILS", Parent: "SITE_SETTINGS", Path: "siteDetails", Kind: KindSubpage},
		{Name: "SITE_SETTINGS_NOTIFICATIONS", Parent: "SITE_SETTINGS", Path: "notifications", Kind: KindSubpage},
		{Name: "SITE_SETTINGS_LOCATION", Parent: "SITE_SETTINGS", Path: "location", Kind: KindSubpage},
		{Name: "SITE_SETTINGS_CAMERA", Parent: "SITE_SETTINGS", Path: "camera", Kind: KindSubpage},

		{Name: "APPEARANCE", Parent: "BASIC", Path: "/appearance", Kind: KindSection, Section: "appearance", Page: "appearance"},
		{Name: "FONTS", Parent: "APPEARANCE", Path: "/fonts", Kind: KindSubpage},

		{Name: "SEARCH", Parent: "BASIC", Path: "/search", Kind: KindSection, Section: "search"},
		{Name: "SEARCH_ENGINES", Parent: "SEARCH", Path: "/searchEngines", Kind: KindSubpage},

		{Name: "DEFAULT_BROWSER", Parent: "BASIC", Path: "/defaultBrowser", Kind: KindSection, Section: "defaultBrowser", Page: "defaultBrowser"},

		{Name: "ON_STARTUP", Parent: "BASIC", Path: "/onStartup", Kind: KindSection, Section: "onStartup", Page: "onStartup"},
		{Name: "STARTUP_PAGES", Parent: "ON_STARTUP", Path: "/startupPages", Kind: KindSubpage},

		{Name: "PERFORMANCE", Parent: "BASIC", Path: "/performance", Kind: KindSection, Section: "performance", Page: "performance"},

		{Name: "LANGUAGES", Parent: "ADVANCED", Path: "/languages", Kind: KindSection, Section: "languages", Page: "languages"},
		{Name: "EDIT_DICTIONARY", Parent: "LANGUAGES", Path: "/editDictionary", Kind: KindSubpage},
		{Name: "DOWNLOADS", Parent: "ADVANCED", Path: "/downloads", Kind: KindSection, Section: "downloads", Page: "downloads"},
		{Name: "ACCESSIBILITY", Parent: "ADVANCED", Path: "/accessibility", Kind: KindSection, Section: "a11y", Page: "a11y"},
		{Name: "CAPTIONS", Parent: "ACCESSIBILITY", Path: "/captions", Kind: KindSubpage},
		{Name: "SYSTEM", Parent: "ADVANCED", Path: "/system", Kind: KindSection, Section: "system", Page: "system"},
		{Name: "RESET", Parent: "ADVANCED", Path: "/reset", Kind: KindSection, Section: "reset", Page: "reset"},
		{Name: "RESET_DIALOG", Parent: "RESET", Path: "/resetProfileSettings", Kind: KindDialog},
		{Name: "TRIGGERED_RESET_DIALOG", Parent: "RESET", Path: "/triggeredResetProfileSettings", Kind: KindDialog},
	}
}
