package flow

// Reasons is the fixed set of request categories offered to the user.
// Matching is exact: a reply must be byte-identical to one of these labels.
var Reasons = []string{"اعتبار", "بورس کالا", "بورس انرژی", "سایر موارد"}

const (
	msgWelcome = "سلام به ربات کارگزاری بورس بیمه ایران خوش آمدید.\n" +
		"ما اینجاییم تا شما با راحتی هر چه تمام‌تر درخواست‌های خودتون رو ثبت و پیگیری کنید.\n\n" +
		"لطفاً نام و نام خانوادگی خود را وارد نمایید:"

	msgNameInvalid = "❌ لطفاً نام و نام خانوادگی صحیح وارد نمایید. مثال: علی محمدی"

	msgAskPhone = "لطفاً شماره تماس خود را وارد نمایید:"

	msgPhoneInvalid = "❌ شماره تلفن نامعتبر است.\n" +
		"لطفاً یک شماره ۱۱ رقمی وارد کنید که با 09 شروع شود."

	msgAskReason = "لطفاً درخواست خود را از بین گزینه‌های زیر انتخاب نمایید:"

	msgReasonInvalid = "❌ لطفاً فقط از گزینه‌های موجود انتخاب نمایید."

	msgDone = "اطلاعات شما با موفقیت ثبت شد ✔️\n" +
		"به زودی با شما تماس می‌گیریم."
)
