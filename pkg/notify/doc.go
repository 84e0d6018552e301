// Package notify delivers rendered reports. The SMTP notifier mirrors
// the classic STARTTLS-by-default mail helper; the console notifier
// covers dry-run mode and tenants without an address.
package notify
