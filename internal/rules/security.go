package rules

import "regexp"

var (
	codeExts    = []string{".swift", ".m", ".h"}
	networkExts = []string{".swift", ".plist"}
	swiftOnly   = []string{".swift"}
)

// securityRules returns the ordered security catalog: credential rules
// first (the only group subject to false-positive suppression), then
// vulnerability, network, memory-safety, and inventory groups.
func securityRules() []Rule {
	rules := credentialRules()
	rules = append(rules, vulnerabilityRules()...)
	rules = append(rules, networkRules()...)
	rules = append(rules, memorySafetyRules()...)
	rules = append(rules, inventoryRules()...)
	return rules
}

// credentialRules flag hardcoded secrets. Key-class patterns are Critical,
// the rest High, matching how exposed keys outrank reused passwords in
// blast radius.
func credentialRules() []Rule {
	const rec = "Move secrets to the keychain or environment configuration and rotate anything already committed"

	cred := func(key, desc string, sev Severity, pattern string) Rule {
		return Rule{
			Key:            key,
			Name:           "Hardcoded Credential",
			Kind:           KindMatch,
			Category:       CategoryCredentials,
			Severity:       sev,
			Impact:         ImpactHigh,
			Specs:          []MatchSpec{{Pattern: regexp.MustCompile(pattern), Description: desc}},
			Recommendation: rec,
		}
	}

	return []Rule{
		cred("cred-api-key", "Generic API key assignment", SeverityCritical,
			`[aA][pP][iI][-_]?[kK][eE][yY]\s*[:=]\s*["'][^"']+["']`),
		cred("cred-secret", "Hardcoded secret assignment", SeverityHigh,
			`(?i)(secret|password|token|key)\s*[:=]\s*["'][^"']+["']`),
		cred("cred-aws-key", "AWS access key", SeverityCritical,
			`AKIA[0-9A-Z]{16}`),
		cred("cred-github-token", "GitHub personal access token", SeverityHigh,
			`ghp_[a-zA-Z0-9]{36}`),
		cred("cred-slack-token", "Slack token", SeverityHigh,
			`xox[baprs]-[0-9]{10,12}-[a-zA-Z0-9]{24}`),
		cred("cred-private-key", "Embedded private key block", SeverityCritical,
			`-----BEGIN (RSA|EC|DSA) PRIVATE KEY-----`),
		cred("cred-bearer-token", "Bearer token literal", SeverityHigh,
			`Bearer\s+[a-zA-Z0-9\-_.]+`),
		cred("cred-basic-auth", "Basic auth literal", SeverityHigh,
			`Basic\s+[a-zA-Z0-9+/]+=*`),
		cred("cred-hex-key", "Long hex string resembling an API key", SeverityCritical,
			`[a-f0-9]{32,}`),
		cred("cred-openai-key", "OpenAI API key", SeverityCritical,
			`sk-[a-zA-Z0-9]{48}`),
		cred("cred-anthropic-key", "Anthropic API key", SeverityCritical,
			`sk-ant-[a-zA-Z0-9]{50,}`),
	}
}

func vulnerabilityRules() []Rule {
	vuln := func(key, name, desc string, sev Severity, impact Impact, rec, pattern string) Rule {
		return Rule{
			Key:            key,
			Name:           name,
			Kind:           KindMatch,
			Category:       CategoryVulnerability,
			Severity:       sev,
			Impact:         impact,
			Specs:          []MatchSpec{{Pattern: regexp.MustCompile(pattern), Description: desc}},
			Recommendation: rec,
			Extensions:     codeExts,
		}
	}

	return []Rule{
		vuln("vuln-sql-injection", "Sql Injection", "SQL statement built by string concatenation",
			SeverityCritical, ImpactHigh, "Use parameterized queries",
			`(?i)(SELECT|INSERT|UPDATE|DELETE|DROP)[^\n]*\+\s*\w+`),
		vuln("vuln-command-injection", "Command Injection", "Shell command built by string concatenation",
			SeverityCritical, ImpactHigh, "Never interpolate user input into shell commands",
			`(?i)(Process|Runtime|exec|system|popen)[^\n]*\+\s*\w+`),
		vuln("vuln-path-traversal", "Path Traversal", "Relative parent-directory path segment",
			SeverityHigh, ImpactHigh, "Canonicalize and validate paths before use",
			`\.\./|\.\.\\`),
		vuln("vuln-weak-random", "Weak Random", "Non-cryptographic random number source",
			SeverityMedium, ImpactMedium, "Use SecRandomCopyBytes for security-sensitive randomness",
			`(?i)arc4random\(\)|random\(\)`),
		vuln("vuln-unsafe-deserialization", "Unsafe Deserialization", "Unsafe object deserialization",
			SeverityHigh, ImpactHigh, "Adopt NSSecureCoding and validate decoded types",
			`(?i)NSKeyedUnarchiver|JSONSerialization[^\n]*unsafe`),
		vuln("vuln-weak-crypto", "Weak Crypto", "Broken or deprecated cryptographic primitive",
			SeverityHigh, ImpactHigh, "Use CryptoKit with SHA-256 or stronger",
			`(?i)(MD5|SHA1|DES|RC4)`),
		vuln("vuln-http-url", "Http Urls", "Cleartext HTTP URL",
			SeverityMedium, ImpactMedium, "Serve all endpoints over HTTPS",
			`(?i)http://[^s]`),
		vuln("vuln-localhost-ref", "Localhost Refs", "Localhost or loopback address reference",
			SeverityLow, ImpactLow, "Remove development endpoints from release builds",
			`(?i)(localhost|127\.0\.0\.1|0\.0\.0\.0)`),
		vuln("vuln-debug-enabled", "Debug Enabled", "Debug flag enabled",
			SeverityMedium, ImpactMedium, "Strip debug configuration from release builds",
			`(?i)DEBUG\s*=\s*(true|yes|1)`),
		vuln("vuln-sensitive-logging", "Logging Sensitive", "Sensitive value passed to a logging call",
			SeverityLow, ImpactLow, "Redact credentials before logging",
			`(?i)(print|NSLog|os_log)[^\n]*\((password|token|key|secret)`),
	}
}

// networkRules check transport security configuration. SSL/TLS weaknesses
// are High, the rest Medium.
func networkRules() []Rule {
	net := func(key, name, desc string, sev Severity, pattern, exclude string) Rule {
		spec := MatchSpec{Pattern: regexp.MustCompile(pattern), Description: desc}
		if exclude != "" {
			spec.Exclude = regexp.MustCompile(exclude)
		}
		impact := ImpactMedium
		if sev == SeverityHigh {
			impact = ImpactHigh
		}
		return Rule{
			Key:            key,
			Name:           name,
			Kind:           KindMatch,
			Category:       CategoryNetwork,
			Severity:       sev,
			Impact:         impact,
			Specs:          []MatchSpec{spec},
			Recommendation: "Enforce TLS 1.2+ and certificate pinning for all endpoints",
			Extensions:     networkExts,
		}
	}

	return []Rule{
		net("net-no-ssl-pinning", "No Ssl Pinning", "URLSession without server trust evaluation",
			SeverityHigh, `URLSession[^\n]*`, `ServerTrustPolicy`),
		net("net-arbitrary-loads", "Allows Arbitrary Loads", "App Transport Security disabled",
			SeverityMedium, `NSAllowsArbitraryLoads[^\n]*true`, ""),
		net("net-no-cert-validation", "No Cert Validation", "Certificate validation bypassed",
			SeverityMedium, `continueWithoutCredentialForAuthenticationChallenge`, ""),
		net("net-weak-tls", "Weak Tls", "TLS minimum version below 1.2",
			SeverityHigh, `TLSMinimumSupportedProtocol[^\n]*TLS(1\.0|1\.1)`, ""),
		net("net-ats-config", "No Ats", "App Transport Security override present",
			SeverityMedium, `NSAppTransportSecurity`, ""),
	}
}

func memorySafetyRules() []Rule {
	mem := func(key, name, desc, pattern, exclude string) Rule {
		spec := MatchSpec{Pattern: regexp.MustCompile(pattern), Description: desc}
		if exclude != "" {
			spec.Exclude = regexp.MustCompile(exclude)
		}
		return Rule{
			Key:            key,
			Name:           name,
			Kind:           KindMatch,
			Category:       CategoryMemory,
			Severity:       SeverityMedium,
			Impact:         ImpactMedium,
			Specs:          []MatchSpec{spec},
			Recommendation: "Zero sensitive buffers and avoid unsafe pointer access",
			Extensions:     swiftOnly,
		}
	}

	return []Rule{
		mem("mem-unsafe-unowned", "Unsafe Unowned", "unowned stored property",
			`unowned\s+var`, ""),
		mem("mem-force-unwrap-sensitive", "Force Unwrap Sensitive", "Force unwrap of a sensitive value",
			`(password|token|key|secret)[^\n]*!`, ""),
		mem("mem-missing-secure-coding", "Missing Secure Coding", "NSCoding without NSSecureCoding",
			`NSCoding[^\n]*`, `NSSecureCoding`),
		mem("mem-raw-pointers", "Raw Pointers", "Unsafe raw pointer usage",
			`Unsafe(Raw)?Pointer`, ""),
		mem("mem-not-cleared", "Memory Not Cleared", "Sensitive value with no explicit memory clearing",
			`(password|token|key|secret)[^\n]*`, `memset|bzero`),
	}
}

// inventoryRules report which cryptographic and authentication mechanisms
// a codebase uses. They carry Info severity: zero score weight under both
// strategies, present in reports for audit context only.
func inventoryRules() []Rule {
	return []Rule{
		{
			Key:      "info-encryption",
			Name:     "Encryption Usage",
			Kind:     KindMatch,
			Category: CategoryEncryption,
			Severity: SeverityInfo,
			Impact:   ImpactNegligible,
			Specs: []MatchSpec{
				{Pattern: regexp.MustCompile(`CommonCrypto`), Description: "Using CommonCrypto (legacy)"},
				{Pattern: regexp.MustCompile(`CryptoKit`), Description: "Using CryptoKit (recommended)"},
				{Pattern: regexp.MustCompile(`SecKey`), Description: "Using SecKey for key management"},
				{Pattern: regexp.MustCompile(`Keychain`), Description: "Using Keychain for secure storage"},
			},
			Recommendation: "Prefer CryptoKit and the Keychain over legacy crypto APIs",
			Extensions:     swiftOnly,
		},
		{
			Key:      "info-authentication",
			Name:     "Authentication Method",
			Kind:     KindMatch,
			Category: CategoryAuthentication,
			Severity: SeverityInfo,
			Impact:   ImpactNegligible,
			Specs: []MatchSpec{
				{Pattern: regexp.MustCompile(`LAContext|evaluatePolicy|biometryType`), Description: "Biometric authentication in use"},
				{Pattern: regexp.MustCompile(`OAuth|authorization_code|client_credentials`), Description: "OAuth flow in use"},
				{Pattern: regexp.MustCompile(`JWT|Bearer\s+ey[A-Za-z0-9]`), Description: "JWT bearer authentication in use"},
				{Pattern: regexp.MustCompile(`(?i)api[_-]?key|X-API-Key`), Description: "API key authentication in use"},
			},
			Recommendation: "Review authentication mechanisms against current platform guidance",
			Extensions:     swiftOnly,
		},
	}
}
