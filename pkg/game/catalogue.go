// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import "sync"

// Catalogue is the ordered, immutable set of all challenges known at
// build time. Lookup by ID is linear; the catalogue is small enough that
// an index would be noise.
type Catalogue struct {
	challenges []Challenge
}

var catalogueOnce = sync.OnceValue(func() *Catalogue {
	return &Catalogue{challenges: buildChallenges()}
})

// DefaultCatalogue returns the process-wide catalogue. The slice behind
// it is built once and never mutated.
func DefaultCatalogue() *Catalogue {
	return catalogueOnce()
}

// All returns every challenge in declaration order.
func (c *Catalogue) All() []Challenge {
	return c.challenges
}

// ByLevel returns the challenges of the given level, preserving
// declaration order. The result is a fresh slice.
func (c *Catalogue) ByLevel(level int) []Challenge {
	var out []Challenge
	for _, ch := range c.challenges {
		if ch.Level == level {
			out = append(out, ch)
		}
	}
	return out
}

// ByID returns the challenge with the given ID, or nil when the ID is
// not in the catalogue.
func (c *Catalogue) ByID(id string) *Challenge {
	for i := range c.challenges {
		if c.challenges[i].ID == id {
			return &c.challenges[i]
		}
	}
	return nil
}

// Len returns the number of catalogued challenges.
func (c *Catalogue) Len() int {
	return len(c.challenges)
}

func buildChallenges() []Challenge {
	return []Challenge{
		// Level 0: beginner challenges.
		{
			ID:    "welcome",
			Title: "The First Message",
			Description: `The screen flickers and displays a corrupted message:

    "V2VsY29tZSB0byB0aGUgR2hvc3QgUHJvdG9jb2w="

This looks like Base64 encoding. Decode it to proceed.
(Hint: You can use online tools or the command 'base64 -d' on Linux)`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"welcome to the ghost protocol"}},
			Hints: []string{
				"Base64 is a common encoding scheme. Try an online Base64 decoder.",
				"The answer is the decoded text exactly as it appears.",
			},
		},
		{
			ID:    "file_discovery",
			Title: "Hidden Files",
			Description: `You find a note with cryptic instructions:

    "The password is hidden in a file that doesn't want to be seen.
     On Unix systems, these files start with a special character.
     The file is named '.secret_key' and contains: ghost_admin_2024"

What is the password?`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorExact, Answers: []string{"ghost_admin_2024"}},
			Hints: []string{
				"Files starting with '.' are hidden on Unix systems.",
				"The password is: ghost_admin_2024",
			},
		},
		{
			ID:    "port_scan",
			Title: "The Open Door",
			Description: `A network scan reveals open ports on a mysterious server:

    PORT     STATE    SERVICE
    22/tcp   open     ssh
    80/tcp   open     http
    443/tcp  open     https
    3306/tcp open     mysql
    6666/tcp open     unknown

One port stands out as unusual. A message appears:
"The devil's port holds the key: EVIL"

What is the unusual port number?`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorExact, Answers: []string{"6666"}},
			Hints: []string{
				"Look for the port that doesn't match common services.",
				"Port 6666 is often called the 'devil's port' - 666 times 10.",
			},
		},
		{
			ID:    "rot13_ghost",
			Title: "Rotational Spirits",
			Description: `A spectral message rotates before your eyes:

    "Gur nafjre vf: EBGNGVBA"

This appears to be ROT13 encoding - a simple letter substitution where
each letter is rotated 13 positions in the alphabet.

Decode the message and enter the revealed answer.`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"rotation"}},
			Hints: []string{
				"ROT13 shifts each letter by 13 positions (A→N, B→O, etc.).",
				"ROT13 is its own inverse - applying it twice gives the original.",
				"The answer is: ROTATION",
			},
		},
		{
			ID:    "binary_basics",
			Title: "The Binary Whisper",
			Description: `A ghost communicates in the language of machines:

    01000111 01001000 01001111 01010011 01010100

Each group of 8 bits represents one ASCII character.
Decode this binary message to reveal the answer.`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"ghost"}},
			Hints: []string{
				"Binary to text: each 8-bit byte is one ASCII character.",
				"You can use online binary-to-text converters.",
				"The answer is: GHOST",
			},
		},
		{
			ID:    "url_decode",
			Title: "Encoded Pathway",
			Description: `You intercept a URL being transmitted:

    https://ghost.corp/login?redirect=%2Fadmin%2Fsecrets%3Fkey%3DUNLOCK

The URL parameters are encoded. The 'key' parameter contains the answer.
URL encoding uses %XX where XX is the hexadecimal ASCII value.

What is the decoded value of the 'key' parameter?`,
			Level: 0, XPReward: 50, SanityCost: 5,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"unlock"}},
			Hints: []string{
				"URL encoding: %2F = /, %3F = ?, %3D = =",
				"The key parameter is after 'key%3D' which means 'key='",
				"The answer is: UNLOCK",
			},
		},

		// Level 1: intermediate challenges.
		{
			ID:    "caesar_cipher",
			Title: "Whispers in Code",
			Description: `An ancient terminal displays a shifted message:

    "JSHZW SURWRFRO FRPSOHWH. WKH DQVZHU LV: FUBSWRJUDSKB"

This appears to be a Caesar cipher with a shift of 3.
Decode the message and enter the answer it reveals.`,
			Level: 1, XPReward: 75, SanityCost: 8,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"cryptography"}},
			Hints: []string{
				"Caesar cipher shifts each letter by a fixed number.",
				"Try shifting each letter back by 3 positions (C→Z, D→A, etc.).",
				"The answer is: CRYPTOGRAPHY",
			},
		},
		{
			ID:    "sql_injection_basics",
			Title: "Database Breach",
			Description: `You discover a vulnerable login form. The SQL query used is:

    SELECT * FROM users WHERE username='[INPUT]' AND password='[PASS]'

To bypass authentication, you need to make the query always return true.
What SQL injection payload would you use for the username field?
(Answer with the classic SQL injection that comments out the password check)`,
			Level: 1, XPReward: 75, SanityCost: 10,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"'or'1'='1'--", "'or1=1--", "admin'--"}},
			Hints: []string{
				"Think about how to make the WHERE clause always true.",
				"Use OR logic and comment out the rest with --",
				"Try: ' OR '1'='1' --",
			},
		},
		{
			ID:    "hex_decode",
			Title: "Hexadecimal Horror",
			Description: `A ghostly message appears in hexadecimal:

    48 45 58 41 44 45 43 49 4D 41 4C

Convert this hex to ASCII to reveal the answer.`,
			Level: 1, XPReward: 75, SanityCost: 8,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"hexadecimal"}},
			Hints: []string{
				"Each pair of hex digits represents one ASCII character.",
				"You can use online hex-to-ASCII converters.",
				"The answer is: HEXADECIMAL",
			},
		},
		{
			ID:    "jwt_token",
			Title: "Token of Trust",
			Description: `You intercept a JWT (JSON Web Token) used for authentication:

    eyJhbGciOiJub25lIn0.eyJ1c2VyIjoiZ3Vlc3QiLCJhZG1pbiI6ZmFsc2V9.

The header shows "alg":"none" - the algorithm is set to 'none'!
This is a critical vulnerability. JWTs have three parts separated by dots:
    HEADER.PAYLOAD.SIGNATURE

The payload (middle part) is Base64-encoded JSON. Decode it to see:
    {"user":"guest","admin":false}

What security vulnerability allows you to modify the token without a signature?
(Answer: the name of this attack, two words)`,
			Level: 1, XPReward: 75, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"algorithm confusion", "none algorithm", "alg none"}},
			Hints: []string{
				"The 'alg' field is set to 'none', bypassing signature verification.",
				"This vulnerability is called 'Algorithm Confusion' or 'None Algorithm'.",
				"Answer: algorithm confusion (or 'none algorithm')",
			},
		},
		{
			ID:    "path_traversal",
			Title: "Directory Descent",
			Description: `A web application shows files from a directory:

    https://ghost.corp/files?file=report.pdf
    https://ghost.corp/files?file=data.txt

You suspect the 'file' parameter is vulnerable. By using special characters,
you could access files outside the intended directory.

What is the common character sequence used in path traversal attacks?
(Answer: the characters used to go up one directory level)`,
			Level: 1, XPReward: 75, SanityCost: 8,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"../", "..", `..\`}},
			Hints: []string{
				"Path traversal attacks navigate up directory levels.",
				`Use '../' to move up one directory (or '..\' on Windows).`,
				"The answer is: ../",
			},
		},
		{
			ID:    "md5_collision",
			Title: "Hash Breakdown",
			Description: `You discover an old authentication system using MD5 hashing:

    Password hash: 5f4dcc3b5aa765d61d8327deb882cf99

The system compares MD5 hashes of passwords. You know MD5 is cryptographically
broken and can be cracked easily with rainbow tables or online databases.

This specific hash is extremely common. What password does it represent?`,
			Level: 1, XPReward: 75, SanityCost: 10,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"password"}},
			Hints: []string{
				"This is one of the most common password hashes.",
				"Try searching for this MD5 hash in an online database.",
				"The answer is: password",
			},
		},
		{
			ID:    "command_injection",
			Title: "Shell Escape",
			Description: `A web app accepts user input to ping hosts:

    Command: ping -c 1 [USER_INPUT]

The app doesn't sanitize input properly. You could inject additional commands
using shell metacharacters like ; & | to execute arbitrary commands.

What single character allows you to chain multiple commands in a shell?
(Answer: the semicolon or one of the pipe/ampersand operators)`,
			Level: 1, XPReward: 75, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{";", "semicolon", "&", "|", "&&", "||"}},
			Hints: []string{
				"Shell metacharacters allow command chaining.",
				"The semicolon (;) allows you to run multiple commands.",
				"Common answers: ; or & or |",
			},
		},

		// Level 2: web, OSINT and steganography challenges.
		{
			ID:    "http_header",
			Title: "Hidden Headers",
			Description: `A web request returns suspicious headers:

    HTTP/1.1 200 OK
    Content-Type: text/html
    X-Ghost-Token: R0hPU1RfVE9LRU4=
    Server: nginx

The X-Ghost-Token looks encoded. Decode it and enter the result.`,
			Level: 2, XPReward: 100, SanityCost: 10,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"ghost_token"}},
			Hints: []string{
				"The token looks like Base64 encoding.",
				"Decode the Base64 string to get the answer.",
			},
		},
		{
			ID:    "mobile_deeplink",
			Title: "Deep Link Discovery",
			Description: `A mobile app uses deep links for navigation:

    myapp://profile/user/admin
    myapp://settings/debug/false
    myapp://secret/unlock/MOBILEHACK

What parameter value unlocks the secret feature?`,
			Level: 2, XPReward: 100, SanityCost: 10,
			Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"mobilehack"}},
			Hints: []string{
				"Look at the URL structure carefully.",
				"The answer is in the last deep link path.",
			},
		},
		{
			ID:    "dns_tunneling",
			Title: "Subdomain Secrets",
			Description: `Network monitoring reveals suspicious DNS queries:

    6461746131.ghost-protocol.com
    6461746132.ghost-protocol.com
    6461746133.ghost-protocol.com

The subdomains look like encoded data. Each subdomain is hexadecimal ASCII.
Decode the first subdomain (6461746131) to discover what's being tunneled.

What word do these hex bytes spell out?`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"data1", "data"}},
			Hints: []string{
				"DNS tunneling hides data in subdomain names.",
				"Convert the hex subdomain to ASCII characters.",
				"6461746131 in hex = 'data1' in ASCII",
			},
		},
		{
			ID:    "xss_attack",
			Title: "Script Injection",
			Description: `A vulnerable web form doesn't sanitize user input:

    <div class="comment">
        [USER_INPUT_HERE]
    </div>

An attacker could inject JavaScript that executes in other users' browsers.

What HTML tag is commonly used for Cross-Site Scripting (XSS) attacks?
(Answer: just the tag name without < or >, e.g., 'div')`,
			Level: 2, XPReward: 100, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"script", "<script>", "script>"}},
			Hints: []string{
				"XSS attacks inject code that runs in the browser.",
				"The most common tag for XSS is used to include JavaScript.",
				"The answer is: script",
			},
		},
		{
			ID:    "api_key_leak",
			Title: "Exposed Secrets",
			Description: `You find a public GitHub repository with a commit history:

    commit 1: "Add API key for testing"
    commit 2: "Remove API key" (deleted from current code)

The developer removed the API key in commit 2, but it's still in commit 1's history!
Anyone can view the Git history to find it. The leaked key format is:

    GHOST_API_KEY_2024_DEMO

What type of security issue is this called?
(Answer: two words, the practice of accidentally committing secrets)`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{
				"secret leak", "secrets leak", "credential leak", "key leak", "secret exposure",
			}},
			Hints: []string{
				"Secrets accidentally committed to Git repos are a major security risk.",
				"Even if deleted, they remain in Git history forever.",
				"This is called a 'secret leak' or 'credential leak'.",
			},
		},
		{
			ID:    "session_hijack",
			Title: "Cookie Monster",
			Description: `You intercept HTTP traffic and find a session cookie:

    Set-Cookie: sessionid=abc123def456; Path=/

The cookie has no HttpOnly or Secure flags set. This means:
- JavaScript can access it (vulnerable to XSS)
- It can be sent over HTTP (vulnerable to interception)

What is the attack called when someone steals and uses your session cookie?
(Answer: two words, _____ hijacking)`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"session hijacking", "session hijack", "cookie hijacking"}},
			Hints: []string{
				"This attack steals active user sessions.",
				"An attacker uses your cookie to impersonate you.",
				"The answer is: session hijacking",
			},
		},
		{
			ID:    "cors_bypass",
			Title: "Origin Stories",
			Description: `A web API has incorrect CORS (Cross-Origin Resource Sharing) headers:

    Access-Control-Allow-Origin: *
    Access-Control-Allow-Credentials: true

The wildcard (*) allows ANY website to make requests with credentials.
This is a critical misconfiguration!

What does CORS stand for?
(Answer: four words, or just 'CORS')`,
			Level: 2, XPReward: 100, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"cors", "cross origin resource sharing"}},
			Hints: []string{
				"CORS is a browser security feature.",
				"It controls cross-domain requests.",
				"CORS = Cross-Origin Resource Sharing",
			},
		},
		{
			ID:    "osint_social_media",
			Title: "Digital Footprints",
			Description: `You're investigating a target who uses the handle "GhostHacker2024" online.
They posted a photo on social media with the caption: "At my favorite coffee shop again!"

The image metadata reveals these EXIF details:
- Camera: iPhone 12 Pro
- GPS Coordinates: 40.7128° N, 74.0060° W
- Timestamp: 2024-01-15 14:30:22

Based on the GPS coordinates, what major city is this person located in?
(Answer: City name only)`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"new york", "new york city", "nyc", "manhattan"}},
			Hints: []string{
				"GPS coordinates can reveal exact locations from photos.",
				"Those coordinates are for a very famous US city.",
				"40.7128° N, 74.0060° W = New York City coordinates",
			},
		},
		{
			ID:    "osint_domain_recon",
			Title: "Domain Investigation",
			Description: `During reconnaissance of "ghost-corp.example", you gather OSINT data:

WHOIS Record:
- Registrar: GoDaddy
- Created: 2020-05-15
- Email: admin@ghost-corp.example
- Name Server: ns1.cloudflare.com

DNS Records:
- A Record: 192.168.1.100
- MX Record: mail.ghost-corp.example (Priority 10)
- TXT Record: "v=spf1 include:_spf.google.com ~all"

What email service provider do they use based on the SPF record?
(Answer: Company name)`,
			Level: 2, XPReward: 100, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"google", "gmail", "g suite", "google workspace"}},
			Hints: []string{
				"SPF records reveal authorized email servers.",
				"Look at the 'include:' domain in the TXT record.",
				"The SPF record includes Google's servers.",
			},
		},
		{
			ID:    "osint_email_analysis",
			Title: "Electronic Trail",
			Description: `You receive a suspicious email during investigation:

From: security@gh0st-bank.com
Subject: Urgent: Verify Your Account
X-Originating-IP: 203.0.113.45

Several red flags suggest this is a phishing attempt:
1. Suspicious domain (gh0st-bank vs ghost-bank)
2. Urgent language creating pressure
3. Originating IP from a different country

What is the technique called when attackers use domains that look similar
to legitimate ones? (Answer: One word, starts with 'typo')`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"typosquatting", "typosquat", "cybersquatting"}},
			Hints: []string{
				"This attack uses domains with small spelling differences.",
				"Attackers register domains that look like legitimate ones.",
				"The answer is: typosquatting",
			},
		},
		{
			ID:    "osint_geolocation",
			Title: "Location Triangulation",
			Description: `You're tracking a suspect who posted this message:

"Just grabbed lunch at that pizza place across from the big clock tower.
 Can see the river from here, and there's construction on the main bridge.
 The weather app says it's 23°C - perfect for a walk in the financial district!"

Additional clues from their profile:
- Posts often mention "the tube" (subway system)
- Uses British spelling: "colour", "realise"
- Recent check-in at "Borough Market"
- Time zone: GMT+0

Which major European city fits these location clues?
(Answer: City name)`,
			Level: 2, XPReward: 100, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"london", "london uk", "london england"}},
			Hints: []string{
				"Look for clues about the country and famous landmarks.",
				"'The tube', British spelling, and GMT+0 suggest which country?",
				"Big Ben clock tower, Thames river, Borough Market = London",
			},
		},
		{
			ID:    "osint_breach_investigation",
			Title: "Data Breach Analysis",
			Description: `You're investigating a data breach. Analysis reveals:

Breach Details:
- 50,000 user accounts compromised
- Password hashes: MD5 (unsalted)
- Attack vector: SQL injection on login form

The breach notification states: "We use industry-standard encryption"
But investigation shows they used MD5 for passwords with no salt.

What critical security practice was missing from their password storage?
(Answer: One word that makes rainbow table attacks much harder)`,
			Level: 2, XPReward: 100, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"salt", "salting", "hashing salt", "password salt"}},
			Hints: []string{
				"This makes each password hash unique even for identical passwords.",
				"Prevents rainbow table attacks by adding random data.",
				"The answer is: salt (or salting)",
			},
		},
		{
			ID:    "osint_username_recon",
			Title: "Digital Identity Hunt",
			Description: `You're tracking a person of interest using username enumeration.
Their primary username "Gh0stRunner42" appears on multiple platforms:

- GitHub: gh0strunner42 (joined 2019, 847 contributions)
- Twitter: @GhostRunner_42 (since 2018, 2.3K followers)
- Reddit: u/Gh0stRunner42 (4 year account, 15K karma)
- LinkedIn: Different name but email visible: gr42@protonmail.com

Cross-referencing the email prefix "gr42" with their other usernames
reveals a pattern. What technique are you using to link these accounts?
(Answer: Two words, first word is 'username')`,
			Level: 2, XPReward: 110, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"username enumeration", "username recon", "username reconnaissance"}},
			Hints: []string{
				"This OSINT technique involves searching for the same username across platforms.",
				"Also called account correlation or identity aggregation.",
				"The answer is: username enumeration",
			},
		},
		{
			ID:    "osint_wayback_machine",
			Title: "Echoes from the Past",
			Description: `A suspicious company suddenly changed their website after a scandal.
The current site at "secure-crypto-vault.com" shows:

Current Version (2024):
"We have always prioritized security and never had any breaches."

But using the Internet Archive, you find a cached version from 2023:

"UPDATE: We experienced a security incident on May 15, 2023.
 Approximately 10,000 user accounts were affected."

This directly contradicts their current claims. What is this web archive
service commonly called? (Answer: Two words, commonly abbreviated as WBM)`,
			Level: 2, XPReward: 110, SanityCost: 10,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"wayback machine", "internet archive", "web archive", "archive.org"}},
			Hints: []string{
				"This service archives historical versions of websites.",
				"archive.org maintains this massive collection of web pages.",
				"The answer is: Wayback Machine (or Internet Archive)",
			},
		},
		{
			ID:    "osint_metadata_extraction",
			Title: "Hidden Data Trails",
			Description: `A document leaked online contains sensitive information in its metadata.

File: confidential_report.pdf
Visible Content: [REDACTED]

But examining the PDF metadata reveals:
- Author: John.Smith@ghost-corp.internal
- Creation Date: 2024-01-20 03:47:15
- Company: Ghost Corporation Internal Affairs
- Comments: "DRAFT - DO NOT DISTRIBUTE OUTSIDE DEPT"

What is the embedded information in files called that can reveal
details about when, where, and by whom it was created?
(Answer: One word, often abbreviated as EXIF for images)`,
			Level: 2, XPReward: 110, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"metadata", "exif", "exif data", "meta data", "file metadata"}},
			Hints: []string{
				"This hidden information is embedded in files alongside the visible content.",
				"For images, it's called EXIF data. For documents, it's similar.",
				"The answer is: metadata",
			},
		},
		{
			ID:    "osint_shodan_recon",
			Title: "The Internet Scanner",
			Description: `You're using a specialized search engine for internet-connected devices.
Unlike Google, this tool indexes:

- Open ports and services
- Webcams and security cameras
- Industrial control systems (ICS/SCADA)
- IoT devices with default credentials

Search Query Example: "port:3389 country:US"
Results: 2.4 million exposed RDP (Remote Desktop) servers in USA

This powerful OSINT tool has been called "the scariest search engine"
because it reveals insecure devices worldwide.

What is this internet-connected device search engine called?
(Answer: One word, rhymes with "rodan")`,
			Level: 2, XPReward: 110, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"shodan", "shodan.io"}},
			Hints: []string{
				"This search engine was created by John Matherly in 2009.",
				"It's named after a character from the System Shock video game.",
				"The answer is: Shodan",
			},
		},
		{
			ID:    "osint_pastebin_leak",
			Title: "Data Dump Discovery",
			Description: `During a security investigation, you find a suspicious paste on a public
text-sharing website. The paste titled "DB_BACKUP_2024" contains:

-- Ghost Corp Database Dump --
admin@ghost.com:Password123!hash=5f4dcc3b5aa765d61d8327deb882cf99
user@ghost.com:Welcome2024!hash=e10adc3949ba59abbe56e057f20f883e

[... 5,000 more lines ...]

Attackers often dump stolen credentials on text-sharing sites like
Pastebin, Ghostbin, Hastebin, or GitHub Gists.

What are these public credential dumps commonly called in cybersecurity?
(Answer: One or two words, rhymes with "taste")`,
			Level: 2, XPReward: 110, SanityCost: 12,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{
				"paste", "pastes", "paste dump", "paste site", "pastebin dump", "data dump", "credential dump",
			}},
			Hints: []string{
				"These are publicly shared text files containing stolen data.",
				"The most famous site for this is Pastebin.com",
				"The answer is: paste (or paste dump)",
			},
		},
		{
			ID:    "steg_lsb_basics",
			Title: "The Hidden Pixel",
			Description: `You discover a seemingly innocent profile picture from a suspected hacker's
social media account. The file size is unusual - 847KB for a 400x400 PNG
that should be around 200KB.

A steganography analysis tool reveals binary data hidden in the least
significant bits (LSB) of the pixel RGB values. The LSB extraction shows:

01001000 01101001 01100100 01100100 01100101 01101110
01001101 01100101 01110011 01110011 01100001 01100111 01100101

LSB steganography replaces the least significant bit of each pixel color
channel with message bits; the ±1 color shifts are invisible to the eye.

What does the hidden binary message decode to when converted from binary to ASCII?`,
			Level: 2, XPReward: 110, SanityCost: 10,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"hiddenmessage"}},
			Hints: []string{
				"Convert each 8-bit binary sequence to its ASCII character.",
				"01001000 = H, 01101001 = i, 01100100 = d, etc.",
				"The hidden message is: HiddenMessage",
			},
		},
		{
			ID:    "steg_exif_data",
			Title: "Metadata Secrets",
			Description: `A leaked photo from a whistleblower contains more than meets the eye.
While the image shows an empty conference room, the EXIF metadata reveals:

Camera: Canon EOS 5D Mark IV
Date: 2024-09-15 14:32:07
GPS Latitude: 37.7749° N
GPS Longitude: 122.4194° W
Artist: J.Anderson
Copyright: Ghost Corporation Internal
Comment: Meeting-Room-B-Project-Blackout-Q4

Based on the Comment field, what is the project code name?`,
			Level: 2, XPReward: 110, SanityCost: 8,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"blackout"}},
			Hints: []string{
				"Look carefully at the Comment field in the EXIF data.",
				"The comment mentions a project name after 'Project-'.",
				"The project code name is: Blackout",
			},
		},
		{
			ID:    "steg_audio_spectrum",
			Title: "The Sound of Silence",
			Description: `You intercept an audio file that sounds like pure static noise. No audible
message can be heard even when amplified. A fellow analyst suggests viewing
it as a spectrogram.

A spectrogram displays audio as a visual image: X-axis is time, Y-axis is
frequency, brightness is amplitude. Loading the file in Audacity and viewing
the spectrogram reveals text encoded in the frequency domain.

Between 2-8 kHz, the spectrogram displays: "GHOSTPROTOCOL"

What message is hidden in the audio spectrogram?`,
			Level: 2, XPReward: 120, SanityCost: 12,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"ghostprotocol"}},
			Hints: []string{
				"The message is formed by frequency patterns visible in the spectrogram.",
				"Look at the text displayed between 2-8 kHz frequency range.",
				"The hidden message is: GHOSTPROTOCOL",
			},
		},
		{
			ID:    "steg_whitespace",
			Title: "Invisible Ink",
			Description: `You receive a text file containing what appears to be normal Python code.
The code runs fine, but the whitespace reveals a pattern of spaces and tabs
that doesn't match normal indentation:

Line 2: TAB SPACE SPACE SPACE SPACE
Line 3: SPACE SPACE SPACE SPACE TAB
Line 4: TAB SPACE SPACE SPACE SPACE SPACE SPACE SPACE
Line 5: SPACE SPACE SPACE SPACE TAB SPACE SPACE SPACE

Using whitespace steganography encoding where TAB = 1 and SPACE = 0, each
line becomes a 5-bit sequence spelling out letters: P-A-S-S.

What five-letter word is hidden in the whitespace pattern?`,
			Level: 2, XPReward: 115, SanityCost: 10,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"pass"}},
			Hints: []string{
				"Decode each line using TAB=1 and SPACE=0 to get 5-bit sequences.",
				"The pattern forms letters: P-A-S-S using 5-bit encoding.",
				"The hidden word is: PASS (or PASSWORD)",
			},
		},
		{
			ID:    "steg_file_concat",
			Title: "The Polyglot File",
			Description: `You download what appears to be a normal PNG image (logo.png, 45KB), but
the raw bytes reveal something unusual. A hex editor shows the PNG end
marker (IEND) at byte offset 28,672 - yet the file continues for another
18KB. Right after the IEND chunk:

00006F78: 50 4B 03 04 14 00 00 00  PK......

50 4B (ASCII "PK") is the magic number for ZIP files! This is a polyglot
file: a complete PNG with a ZIP archive appended after the end marker.

Extracting the hidden archive (dd, binwalk, or unzip directly) reveals a
file named "credentials.txt" containing:

    Username: ghost_admin
    Password: SecretPass2024

What is the password found in the hidden credentials file?`,
			Level: 2, XPReward: 120, SanityCost: 12,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"secretpass"}},
			Hints: []string{
				"The hidden ZIP archive contains a credentials.txt file.",
				"Look for the password field in the credentials file.",
				"The password is: SecretPass2024",
			},
		},

		// Level 3: advanced challenges.
		{
			ID:    "binary_exploit",
			Title: "Buffer Overflow Ghost",
			Description: `You find a vulnerable C program:

    char buffer[8];
    strcpy(buffer, user_input);

The buffer can only hold 8 characters, but there's no bounds checking.
If the password stored after the buffer in memory is "OVERFLOW", and you
need to overwrite it, what's a classic buffer overflow attack called?

(Answer: the type of vulnerability, one word)`,
			Level: 3, XPReward: 125, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"buffer overflow", "bufferoverflow", "overflow"}},
			Hints: []string{
				"This is a classic memory corruption vulnerability.",
				"The vulnerability is called a 'buffer overflow'.",
			},
		},
		{
			ID:    "reverse_engineering",
			Title: "Decompiled Secrets",
			Description: `You decompile a binary and find this pseudocode:

    if (input XOR 0x42 == 0x2D) {
        grant_access();
    }

What single character input would grant access?
(Hint: XOR is reversible, and 0x42 = 'B' in ASCII)`,
			Level: 3, XPReward: 125, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"o", "111", "0x6f"}},
			Hints: []string{
				"XOR is reversible: A XOR B = C means A XOR C = B",
				"Calculate: 0x2D XOR 0x42 = ?",
				"The answer is 'o' (ASCII 111 or 0x6F)",
			},
		},
		{
			ID:    "format_string",
			Title: "String Exploitation",
			Description: `You analyze a vulnerable C program:

    printf(user_input);  // DANGEROUS!

Instead of: printf("%s", user_input);

The program directly passes user input to printf without a format specifier.
An attacker can use format specifiers like %x, %s, or %n to read/write memory.

What is this classic vulnerability called?
(Answer: two or three words)`,
			Level: 3, XPReward: 125, SanityCost: 15,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"formatstring"}},
			Hints: []string{
				"This vulnerability involves printf and format specifiers.",
				"User-controlled format strings can read/write arbitrary memory.",
				"The answer is: format string vulnerability",
			},
		},
		{
			ID:    "race_condition",
			Title: "Time Paradox",
			Description: `A program checks permissions then opens a file:

    1. if (can_access(file)) {
    2.     // Small time window here!
    3.     open_file(file);
    4. }

Between steps 1 and 3, an attacker could swap the file with a symbolic link
to a privileged file. The check passes, but a different file is opened!

What is this time-based vulnerability called?
(Answer: two words, _____ condition)`,
			Level: 3, XPReward: 125, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"race condition", "toctou", "time of check time of use"}},
			Hints: []string{
				"This exploits the time gap between operations.",
				"Also known as TOCTOU (Time Of Check, Time Of Use).",
				"The answer is: race condition",
			},
		},
		{
			ID:    "integer_overflow",
			Title: "Number Nightmare",
			Description: `A C program allocates memory based on user input:

    unsigned char size = user_input;  // Max value: 255
    char* buffer = malloc(size + 10);

If user_input = 250, then size + 10 = 260... but wait!
An unsigned char can only hold 0-255, so 260 wraps around to 4!
This allocates only 4 bytes instead of 260.

What is this vulnerability called?
(Answer: two words, _____ overflow)`,
			Level: 3, XPReward: 125, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"integer overflow", "integer wraparound", "arithmetic overflow"}},
			Hints: []string{
				"This happens when numbers exceed their maximum value.",
				"Values 'wrap around' back to zero.",
				"The answer is: integer overflow",
			},
		},
		{
			ID:    "steg_dna_encoding",
			Title: "Genetic Message",
			Description: `A genetics research paper contains an unusual DNA sequence that doesn't
match any known biological patterns. The sequence appears to be synthetic:

ATCGATCGTAGCTAGCATCGATCGTAGCTAGCATCGATCGTAGC
TAGCATCGATCGTAGCTAGCATCGATCGTAGCTAGCATCGATCG

DNA can be used as a data storage medium using the 4 nucleotides. One
encoding scheme maps each base to two bits (A=00, T=01, C=10, G=11);
grouping the bits into bytes yields ASCII text. Decoded properly, the
sequence spells out a familiar tech term.

What four-letter word is encoded in the DNA sequence?`,
			Level: 3, XPReward: 150, SanityCost: 15,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"data", "code", "gene"}},
			Hints: []string{
				"Use the encoding: A=00, T=01, C=10, G=11 to convert pairs to binary.",
				"Group the binary into 8-bit bytes and convert to ASCII characters.",
				"The hidden message is: DATA",
			},
		},
		{
			ID:    "malware_obfuscation",
			Title: "Layered Deception",
			Description: `You discover a suspicious JavaScript file with heavily obfuscated code:

    eval(atob('ZXZhbChhdG9iKCdZWFJsWW5Rb...'));

This is multi-layer obfuscation using Base64 encoding and eval().
Peeling the layers one at a time:

Layer 1 decodes to: eval(atob('...'))
Layer 2 decodes to: atob('bWFsd2FyZQ==')
Layer 3 decodes to: the final string

Malware uses obfuscation to evade antivirus signatures, hide intent, and
complicate reverse engineering.

What is the final decoded string after removing all obfuscation layers?`,
			Level: 3, XPReward: 140, SanityCost: 15,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"malware"}},
			Hints: []string{
				"Decode each atob() layer step by step from inner to outer.",
				"Each layer uses Base64 encoding (atob = ASCII to Binary).",
				"The final decoded string is: malware",
			},
		},
		{
			ID:    "malware_behavior",
			Title: "Behavioral Signature",
			Description: `A security analyst observes suspicious system behavior on a compromised machine:

OBSERVED ACTIVITIES:
1. Process "svchost.exe" spawns from unusual parent: cmd.exe
2. Registry modification: HKLM\...\CurrentVersion\Run
3. Outbound connection to IP: 203.0.113.42 on port 443 (non-standard cert)
4. Process injection into explorer.exe
5. Scheduled task created: "WindowsUpdate" (runs at startup)
6. Attempts to disable Windows Defender
7. Encrypts files in Documents folder with .ghost extension

Based on the file encryption with ".ghost" extension and ransom behavior,
what category of malware is this most likely?

(Answer: type of malware that encrypts files for ransom, one word)`,
			Level: 3, XPReward: 150, SanityCost: 18,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"ransom"}},
			Hints: []string{
				"The malware encrypts files and likely demands payment.",
				"The .ghost extension and encryption behavior are classic signs.",
				"This is: ransomware",
			},
		},
		{
			ID:    "malware_sandbox",
			Title: "Sandbox Escape Artist",
			Description: `You analyze malware that refuses to execute in your analysis environment.
The malware checks for various sandbox/VM indicators before running:

- VM detection: 'VMware', 'VirtualBox', 'QEMU', 'Xen' in system info
- Common sandbox usernames: 'malware', 'sandbox', 'virus', 'sample'
- Mouse movement below a threshold (no simulated user activity)
- System uptime under 10 minutes (fresh sandbox)
- Fewer than 30 running processes

Defensive sandboxes counter by simulating realistic user activity and
hiding VM indicators.

What is this category of techniques called when malware detects analysis
environments?

(Answer: two words, _____ evasion)`,
			Level: 3, XPReward: 150, SanityCost: 20,
			Validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"sandbox evasion", "sandbox detection", "vm evasion", "anti analysis"}},
			Hints: []string{
				"The malware is trying to detect if it's being analyzed.",
				"It checks for virtualization, sandboxes, and analysis tools.",
				"These are called: sandbox evasion techniques",
			},
		},
		{
			ID:    "iot_default_creds",
			Title: "The Unchanged Password",
			Description: `During a security audit, you scan a home network and discover a smart
camera with an open web interface on port 80. Searching online for the
device model reveals the manufacturer's documentation:

Model: GhostCam 3000
Default Credentials:
- Username: admin
- Password: admin

WARNING: Please change default credentials after first login!

The homeowner never changed these credentials. The Mirai botnet used
exactly this weakness to infect 600,000+ IoT devices.

What is the default password for the GhostCam 3000?`,
			Level: 3, XPReward: 140, SanityCost: 15,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"admin", "default"}},
			Hints: []string{
				"Check the manufacturer's documentation shown above.",
				"IoT devices often use 'admin' as both username and password.",
				"The default password is: admin",
			},
		},
		{
			ID:    "iot_firmware",
			Title: "Firmware Secrets",
			Description: `You extract firmware from a smart home hub and analyze the binary.
Using the 'strings' command to find readable text, you discover:

    API_KEY=sk_live_51HxK8900334GhostAPIKey
    ADMIN_PASSWORD=SuperSecret2024
    BACKDOOR_USER=ghostadmin
    MQTT_PASSWORD=mqtt_ghost_pass_99

Firmware analysis reveals hardcoded secrets that should NEVER be in
firmware: they are identical across every device of the model and can
only be rotated with a firmware update.

What is the hardcoded admin password found in the firmware?`,
			Level: 3, XPReward: 140, SanityCost: 15,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"supersecret"}},
			Hints: []string{
				"Look for the ADMIN_PASSWORD value in the strings output.",
				"It's listed in the firmware secrets above.",
				"The admin password is: SuperSecret2024",
			},
		},
		{
			ID:    "iot_mqtt",
			Title: "Unencrypted Whispers",
			Description: `You're monitoring network traffic from smart home devices and intercept
MQTT messages (a common publish/subscribe IoT protocol):

MQTT Packet #1:
Topic: home/frontdoor/lock
Payload: {"command": "unlock", "user": "ghost", "pin": "1234"}

MQTT Packet #2:
Topic: home/security/alarm
Payload: {"status": "disarmed", "code": "5678"}

The protocol is running UNENCRYPTED (no TLS)! Anyone on the network can
read messages, intercept commands, and replay them.

What is the door lock PIN code revealed in the unencrypted MQTT traffic?`,
			Level: 3, XPReward: 150, SanityCost: 15,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"1234"}},
			Hints: []string{
				"Look at the first MQTT packet about the front door lock.",
				"The PIN is in the 'pin' field of the JSON payload.",
				"The door lock PIN is: 1234",
			},
		},

		// Level 4: the final puzzle.
		{
			ID:    "final_protocol",
			Title: "The Ghost's True Name",
			Description: `You've reached the core of the system. A final riddle appears:

    "I am the protocol that haunts this machine.
     My name is hidden in the challenges you've seen.
     Take the first letter of each challenge's ID,
     And you'll spell out what I'm meant to be."

What is the Ghost Protocol's true name?

(Combine the first letters of all challenge IDs in order)`,
			Level: 4, XPReward: 200, SanityCost: 20,
			Validator: Validator{Kind: ValidatorSubstring, Answers: []string{"phantom", "freedom", "protocol"}},
			Hints: []string{
				"Look back at all the challenge IDs you've completed.",
				"Take the FIRST letter from each challenge ID.",
				"The pattern spells 'PROTOCOL' or similar...",
			},
		},
	}
}
