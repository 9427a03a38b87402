// Package templates embeds the license template corpus. Each file
// under data/ holds one license's text, preformatted to 80 columns,
// with %%name%% markers where user values belong; the file stem is the
// SPDX identifier.
package templates
