package billing

import "fmt"

// buildUpgradeConfirmedEmail builds the notification sent when a checkout
// completes and the account becomes Pro.
func buildUpgradeConfirmedEmail(baseURL string) (subject, html, plain string) {
	subject = "Welcome to PromptHub Pro!"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>You're on Pro now</h2>
			<p>Your upgrade went through and your saved prompt limit is gone.</p>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open your dashboard</a></p>
			<p>Thanks,<br>The PromptHub Team</p>
		</body>
		</html>
	`, baseURL)

	plain = fmt.Sprintf(`
You're on Pro now.

Your upgrade went through and your saved prompt limit is gone.

Open your dashboard: %s/dashboard

Thanks,
The PromptHub Team
	`, baseURL)

	return subject, html, plain
}

// buildSubscriptionEndedEmail builds the notification sent when a Pro
// subscription lapses and the account drops back to the free tier.
func buildSubscriptionEndedEmail(baseURL string) (subject, html, plain string) {
	subject = "Your PromptHub Pro subscription has ended"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Pro subscription has ended</h2>
			<p>Your account is back on the free plan. Prompts you already saved stay put, but new saves are limited again.</p>
			<p><a href="%s/pricing" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Resubscribe</a></p>
			<p>Thanks,<br>The PromptHub Team</p>
		</body>
		</html>
	`, baseURL)

	plain = fmt.Sprintf(`
Your Pro subscription has ended.

Your account is back on the free plan. Prompts you already saved stay put,
but new saves are limited again.

Resubscribe: %s/pricing

Thanks,
The PromptHub Team
	`, baseURL)

	return subject, html, plain
}
