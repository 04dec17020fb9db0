package theme

// Project returns the portfolio site's theme document.
func Project() *ThemeConfig {
	return &ThemeConfig{
		Content: []string{
			"./app/templates/**/*.html",
			"./app/static/js/**/*.js",
		},
		Theme: Theme{
			Extend: Tokens{
				FontFamily: map[string][]string{
					"sans": {"Inter", "sans-serif"},
				},
				Colors: map[string]string{
					"brandBase":        "#0f0f0f",
					"brandSidebar":     "#141414",
					"brandCard":        "#1a1a1a",
					"brandAccent":      "#DDAA77",
					"brandAccentHover": "#cda06d",
					"brandBorder":      "#232323",
				},
			},
		},
		Plugins: []string{},
	}
}

// BaseTheme returns the default design theme that document extensions are
// merged into. It carries the stock font stacks and a neutral palette.
func BaseTheme() Tokens {
	return Tokens{
		FontFamily: map[string][]string{
			"sans": {
				"ui-sans-serif", "system-ui", "sans-serif",
				"Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji",
			},
			"serif": {"ui-serif", "Georgia", "Cambria", "Times New Roman", "Times", "serif"},
			"mono": {
				"ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas",
				"Liberation Mono", "Courier New", "monospace",
			},
		},
		Colors: map[string]string{
			"black":     "#000000",
			"white":     "#ffffff",
			"gray-50":   "#f9fafb",
			"gray-100":  "#f3f4f6",
			"gray-200":  "#e5e7eb",
			"gray-300":  "#d1d5db",
			"gray-400":  "#9ca3af",
			"gray-500":  "#6b7280",
			"gray-600":  "#4b5563",
			"gray-700":  "#374151",
			"gray-800":  "#1f2937",
			"gray-900":  "#111827",
			"gray-950":  "#030712",
			"red-500":   "#ef4444",
			"amber-500": "#f59e0b",
			"green-500": "#22c55e",
			"blue-500":  "#3b82f6",
		},
	}
}
