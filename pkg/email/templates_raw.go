package email

const (
	verificationTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>{{.AppName}}</title>
	</head>
	<body>
		<div>
			<h1>Elektron pochtangizni tasdiqlang!</h1>
			<p>Assalomu alaykum, {{.Username}}!</p>
			<p>Siz bizning platformamizda ro'yxatdan o'tdingiz.</p>
			<p>Ro'yxatdan o'tishni yakunlash va hisobingizni faollashtirish uchun quyidagi havolani bosing:</p>
			<p>
				<a href="{{.VerifyURL}}">Hisobni tasdiqlash</a>
			</p>
			<p>Yoki havolani brauzeringizga nusxalang:</p>
			<p>{{.VerifyURL}}</p>
			<p>Agar bu amalni siz bajarmagan bo'lsangiz, iltimos, bu xabarni e'tiborsiz qoldiring.</p>
			<p>— Hurmat bilan {{.AppName}} jamoasi!</p>
		</div>
	</body>
	</html>`

	verificationTemplateText = `
		Assalomu alaykum, {{.Username}}!

		Siz bizning platformamizda ro'yxatdan o'tdingiz.
		Ro'yxatdan o'tishni yakunlash va hisobingizni faollashtirish uchun quyidagi havolani bosing:

		{{.VerifyURL}}

		Agar bu amalni siz bajarmagan bo'lsangiz, iltimos, bu xabarni e'tiborsiz qoldiring.

		— Hurmat bilan {{.AppName}} jamoasi!
	`

	newMovieTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>{{.AppName}}</title>
	</head>
	<body>
		<div>
			<h1>Bizda premyera!</h1>
			<p>🎬 Film nomi: {{.Title}}</p>
			<p>⏳ Davomiyligi: {{.Duration}}</p>
			<p>🗣 Tili: {{.Language}}</p>
		</div>
	</body>
	</html>`

	newMovieTemplateText = `
		Bizda premyera!

		🎬 Film nomi: {{.Title}}
		⏳ Davomiyligi: {{.Duration}}
		🗣 Tili: {{.Language}}
	`
)
