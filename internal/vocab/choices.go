package vocab

// ChoiceEntry is one multiple-choice vocabulary item: the term, a sentence
// using it, its meaning, and three distractor meanings.
type ChoiceEntry struct {
	Term     string
	Sentence string
	Correct  string
	Wrong    [3]string
}

var Idioms = []ChoiceEntry{
	{Term: "break the ice", Sentence: "To break the ice, he told a short joke.", Correct: "to make people feel more comfortable", Wrong: [3]string{"to start a fight", "to end a meeting", "to refuse to talk"}},
	{Term: "piece of cake", Sentence: "The test was a piece of cake.", Correct: "very easy", Wrong: [3]string{"very expensive", "very dangerous", "very boring"}},
	{Term: "once in a blue moon", Sentence: "We eat out once in a blue moon.", Correct: "very rarely", Wrong: [3]string{"every day", "at night", "all weekend"}},
	{Term: "under the weather", Sentence: "I'm feeling under the weather today.", Correct: "a bit ill", Wrong: [3]string{"very lucky", "very hungry", "very busy"}},
	{Term: "hit the books", Sentence: "I need to hit the books tonight.", Correct: "study", Wrong: [3]string{"go to sleep", "clean my room", "buy new books"}},
	{Term: "call it a day", Sentence: "Let's call it a day and continue tomorrow.", Correct: "stop working for now", Wrong: [3]string{"celebrate a birthday", "start over", "work faster"}},
	{Term: "get the hang of it", Sentence: "After two lessons, she got the hang of it.", Correct: "learn how to do it", Wrong: [3]string{"forget it completely", "get angry about it", "pay for it"}},
	{Term: "in a nutshell", Sentence: "In a nutshell, we need more time.", Correct: "briefly", Wrong: [3]string{"very loudly", "with great risk", "in secret"}},
	{Term: "cost an arm and a leg", Sentence: "That jacket costs an arm and a leg.", Correct: "is very expensive", Wrong: [3]string{"is very small", "is very old", "is very popular"}},
	{Term: "on the same page", Sentence: "Before we start, let's make sure we're on the same page.", Correct: "have the same understanding", Wrong: [3]string{"read the same book", "sit next to each other", "use the same computer"}},
	{Term: "spill the beans", Sentence: "Don't spill the beans about the surprise.", Correct: "reveal a secret", Wrong: [3]string{"cook dinner", "change the plan", "make a mistake"}},
	{Term: "hit the sack", Sentence: "I'm tired, so I'm going to hit the sack.", Correct: "go to bed", Wrong: [3]string{"go to work", "go shopping", "go jogging"}},
	{Term: "hang out", Sentence: "We usually hang out after school.", Correct: "spend time casually", Wrong: [3]string{"argue loudly", "study hard", "leave quickly"}},
	{Term: "give it a shot", Sentence: "I've never tried it, but I'll give it a shot.", Correct: "try it", Wrong: [3]string{"refuse it", "sell it", "hide it"}},
	{Term: "the last straw", Sentence: "When he lied again, it was the last straw.", Correct: "the final problem that makes you give up", Wrong: [3]string{"a small helpful detail", "a funny coincidence", "a lucky break"}},
	{Term: "let the cat out of the bag", Sentence: "She let the cat out of the bag and ruined the surprise.", Correct: "accidentally reveal a secret", Wrong: [3]string{"buy a pet", "lose something", "avoid a problem"}},
	{Term: "burn the midnight oil", Sentence: "He burned the midnight oil to finish the project.", Correct: "worked late at night", Wrong: [3]string{"woke up early", "took a long break", "traveled far"}},
	{Term: "back to the drawing board", Sentence: "The plan failed, so it's back to the drawing board.", Correct: "start again with a new plan", Wrong: [3]string{"celebrate success", "do nothing", "ask for a refund"}},
	{Term: "keep an eye on", Sentence: "Please keep an eye on my bag.", Correct: "watch/monitor", Wrong: [3]string{"steal", "throw away", "repair"}},
	{Term: "get cold feet", Sentence: "He got cold feet before the interview.", Correct: "become nervous and unsure", Wrong: [3]string{"feel very confident", "get sick", "become angry"}},
	{Term: "bark up the wrong tree", Sentence: "If you blame me, you're barking up the wrong tree.", Correct: "accusing the wrong person", Wrong: [3]string{"speaking too quietly", "agreeing too easily", "working too slowly"}},
	{Term: "kill two birds with one stone", Sentence: "By cycling to work, I kill two birds with one stone.", Correct: "do two things with one action", Wrong: [3]string{"waste time", "make things worse", "do something dangerous"}},
	{Term: "take it with a grain of salt", Sentence: "Take his story with a grain of salt.", Correct: "don't fully believe it", Wrong: [3]string{"repeat it to everyone", "write it down", "feel sorry for him"}},
	{Term: "a blessing in disguise", Sentence: "Losing that job was a blessing in disguise.", Correct: "something bad that turns out good", Wrong: [3]string{"a clear mistake", "a planned event", "a simple lie"}},
	{Term: "break a leg", Sentence: "Break a leg in your performance tonight!", Correct: "good luck", Wrong: [3]string{"be careful", "don't go", "work harder"}},
	{Term: "cut corners", Sentence: "They cut corners and the quality dropped.", Correct: "do something cheaply to save time or money", Wrong: [3]string{"improve a process", "cancel a project", "share a secret"}},
	{Term: "keep your chin up", Sentence: "Keep your chin up. You'll do better next time.", Correct: "stay positive", Wrong: [3]string{"be silent", "leave early", "be more strict"}},
	{Term: "in hot water", Sentence: "He's in hot water for missing the deadline.", Correct: "in trouble", Wrong: [3]string{"on vacation", "in love", "out of money"}},
	{Term: "out of the blue", Sentence: "Out of the blue, she called me after years.", Correct: "suddenly, unexpectedly", Wrong: [3]string{"after careful planning", "in the morning", "as a joke"}},
	{Term: "on the fence", Sentence: "I'm on the fence about moving.", Correct: "undecided", Wrong: [3]string{"very sure", "very tired", "very excited"}},
	{Term: "the ball is in your court", Sentence: "I've sent the offer, so the ball is in your court.", Correct: "it's your decision/action now", Wrong: [3]string{"you lost", "you are late", "you are wrong"}},
	{Term: "pull someone's leg", Sentence: "Relax, I'm just pulling your leg.", Correct: "joking/teasing", Wrong: [3]string{"insulting seriously", "giving advice", "apologizing"}},
	{Term: "hit the nail on the head", Sentence: "You hit the nail on the head about the main issue.", Correct: "be exactly right", Wrong: [3]string{"be completely wrong", "be too rude", "be too quiet"}},
	{Term: "miss the point", Sentence: "You're missing the point. This is about safety.", Correct: "not understand the main idea", Wrong: [3]string{"agree fully", "explain clearly", "finish quickly"}},
	{Term: "get out of hand", Sentence: "The situation got out of hand.", Correct: "became uncontrolled", Wrong: [3]string{"became very funny", "became very quiet", "became very simple"}},
	{Term: "see eye to eye", Sentence: "They don't see eye to eye on politics.", Correct: "agree", Wrong: [3]string{"sleep", "compete", "ignore each other"}},
	{Term: "on thin ice", Sentence: "After that comment, you're on thin ice.", Correct: "in a risky situation", Wrong: [3]string{"very safe", "very famous", "very relaxed"}},
	{Term: "make up your mind", Sentence: "Please make up your mind by Friday.", Correct: "decide", Wrong: [3]string{"complain", "change the topic", "forget"}},
	{Term: "keep it to yourself", Sentence: "If it's private, keep it to yourself.", Correct: "don't tell others", Wrong: [3]string{"tell everyone", "write a report", "ask permission"}},
	{Term: "learn the hard way", Sentence: "He learned the hard way not to ignore warnings.", Correct: "learn from a bad experience", Wrong: [3]string{"learn quickly", "learn from a teacher", "learn by reading"}},
	{Term: "bite the bullet", Sentence: "I'll bite the bullet and call customer support.", Correct: "do something unpleasant but necessary", Wrong: [3]string{"avoid it forever", "celebrate loudly", "make it worse"}},
	{Term: "get something off your chest", Sentence: "I need to get this off my chest.", Correct: "say something you've been holding in", Wrong: [3]string{"exercise", "change clothes", "forget a promise"}},
	{Term: "take it easy", Sentence: "You've worked a lot, so take it easy.", Correct: "relax", Wrong: [3]string{"work faster", "argue more", "travel far"}},
	{Term: "over the moon", Sentence: "She was over the moon about the results.", Correct: "very happy", Wrong: [3]string{"very angry", "very confused", "very bored"}},
	{Term: "fed up", Sentence: "I'm fed up with these delays.", Correct: "annoyed and tired of it", Wrong: [3]string{"excited", "hungry", "curious"}},
	{Term: "get your act together", Sentence: "We need to get our act together before Monday.", Correct: "become organized and responsible", Wrong: [3]string{"start acting classes", "go on vacation", "stop communicating"}},
	{Term: "make ends meet", Sentence: "It's hard to make ends meet right now.", Correct: "have enough money to live", Wrong: [3]string{"become famous", "move abroad", "finish a book"}},
	{Term: "a rip-off", Sentence: "That price is a rip-off.", Correct: "too expensive / unfair price", Wrong: [3]string{"a bargain", "a gift", "a refund"}},
	{Term: "by the book", Sentence: "She does everything by the book.", Correct: "following rules strictly", Wrong: [3]string{"without planning", "with creativity", "as a joke"}},
	{Term: "off the top of my head", Sentence: "Off the top of my head, I can name three reasons.", Correct: "from memory, without thinking long", Wrong: [3]string{"after research", "by accident", "with help"}},
	{Term: "take it personally", Sentence: "Don't take it personally. It wasn't about you.", Correct: "feel offended as if it targets you", Wrong: [3]string{"feel proud", "feel sleepy", "feel confused"}},
	{Term: "run out of time", Sentence: "We ran out of time before the last question.", Correct: "have no time left", Wrong: [3]string{"have extra time", "be on time", "waste time"}},
	{Term: "in the long run", Sentence: "In the long run, this will save money.", Correct: "over a long period of time", Wrong: [3]string{"right now", "by chance", "for one day only"}},
	{Term: "so far, so good", Sentence: "So far, so good. No problems yet.", Correct: "until now, things are okay", Wrong: [3]string{"everything is finished", "things are terrible", "nothing matters"}},
	{Term: "a quick fix", Sentence: "This is only a quick fix, not a real solution.", Correct: "a temporary solution", Wrong: [3]string{"a perfect plan", "a slow process", "a secret trick"}},
	{Term: "get the wrong end of the stick", Sentence: "You got the wrong end of the stick. I meant something else.", Correct: "misunderstand", Wrong: [3]string{"understand perfectly", "get angry", "change your mind"}},
	{Term: "go the extra mile", Sentence: "She always goes the extra mile for customers.", Correct: "make extra effort", Wrong: [3]string{"leave early", "avoid work", "complain loudly"}},
	{Term: "in the same boat", Sentence: "We're in the same boat. We all need help.", Correct: "in the same situation", Wrong: [3]string{"in different cities", "in danger", "in charge"}},
	{Term: "keep someone posted", Sentence: "Keep me posted about any changes.", Correct: "keep me informed", Wrong: [3]string{"ignore me", "argue with me", "pay me"}},
	{Term: "make a long story short", Sentence: "To make a long story short, we missed the train.", Correct: "summarize briefly", Wrong: [3]string{"add details", "lie", "change the subject"}},
	{Term: "take a rain check", Sentence: "Can I take a rain check on dinner?", Correct: "postpone to another time", Wrong: [3]string{"cancel forever", "pay in advance", "arrive early"}},
	{Term: "jump the gun", Sentence: "Don't jump the gun. Wait for the signal.", Correct: "act too early", Wrong: [3]string{"act too late", "act very carefully", "act secretly"}},
	{Term: "cut to the chase", Sentence: "Can we cut to the chase?", Correct: "get to the main point", Wrong: [3]string{"change the topic", "stop talking", "tell a joke"}},
	{Term: "throw in the towel", Sentence: "After three tries, he threw in the towel.", Correct: "give up", Wrong: [3]string{"win easily", "get promoted", "start exercising"}},
	{Term: "keep your fingers crossed", Sentence: "Keep your fingers crossed for tomorrow.", Correct: "hope for good luck", Wrong: [3]string{"plan carefully", "stay silent", "work harder"}},
	{Term: "on a roll", Sentence: "She's on a roll with three wins in a row.", Correct: "having repeated success", Wrong: [3]string{"feeling sick", "being confused", "being late"}},
	{Term: "give someone the benefit of the doubt", Sentence: "Let's give him the benefit of the doubt.", Correct: "assume he may be innocent/right", Wrong: [3]string{"blame him immediately", "ignore him", "punish him"}},
	{Term: "speak of the devil", Sentence: "Speak of the devil, here she is!", Correct: "the person appears as you talk about them", Wrong: [3]string{"tell a scary story", "say something rude", "change your opinion"}},
	{Term: "go without saying", Sentence: "It goes without saying that safety comes first.", Correct: "is obvious", Wrong: [3]string{"is false", "is secret", "is funny"}},
	{Term: "pull yourself together", Sentence: "Pull yourself together. We need to focus.", Correct: "calm down and regain control", Wrong: [3]string{"run away", "get excited", "take a nap"}},
	{Term: "take a step back", Sentence: "Let's take a step back and look at the bigger picture.", Correct: "pause and reconsider", Wrong: [3]string{"leave forever", "rush forward", "celebrate"}},
	{Term: "in the nick of time", Sentence: "He arrived in the nick of time.", Correct: "just in time", Wrong: [3]string{"very early", "very late", "by accident"}},
	{Term: "turn a blind eye", Sentence: "The manager turned a blind eye to the mistake.", Correct: "ignore it on purpose", Wrong: [3]string{"fix it quickly", "report it", "laugh at it"}},
	{Term: "read between the lines", Sentence: "Read between the lines. He's not happy.", Correct: "understand the hidden meaning", Wrong: [3]string{"read aloud", "translate word for word", "skip the text"}},
	{Term: "a hot topic", Sentence: "AI is a hot topic right now.", Correct: "a widely discussed subject", Wrong: [3]string{"a cooking method", "a private secret", "a small detail"}},
	{Term: "up in the air", Sentence: "Our travel plans are still up in the air.", Correct: "not decided yet", Wrong: [3]string{"finished", "very expensive", "very exciting"}},
	{Term: "at the end of the day", Sentence: "At the end of the day, health matters most.", Correct: "when everything is considered", Wrong: [3]string{"at midnight", "in the morning", "during lunch"}},
	{Term: "take it or leave it", Sentence: "That's my final offer. Take it or leave it.", Correct: "accept it or reject it", Wrong: [3]string{"improve it later", "borrow it", "hide it"}},
	{Term: "keep your word", Sentence: "He always keeps his word.", Correct: "does what he promised", Wrong: [3]string{"talks too much", "lies often", "forgets easily"}},
	{Term: "make a point", Sentence: "She made a point about fairness.", Correct: "emphasize an important idea", Wrong: [3]string{"end the conversation", "tell a lie", "avoid the topic"}},
	{Term: "the tip of the iceberg", Sentence: "What we found is just the tip of the iceberg.", Correct: "only a small part of a bigger problem", Wrong: [3]string{"the final solution", "a lucky moment", "a simple mistake"}},
	{Term: "bend the rules", Sentence: "They bent the rules to help him.", Correct: "not follow rules strictly", Wrong: [3]string{"create new rules", "punish someone", "refuse help"}},
	{Term: "play it by ear", Sentence: "We don't have a plan, so let's play it by ear.", Correct: "decide as we go", Wrong: [3]string{"follow strict rules", "cancel immediately", "ask for permission"}},
	{Term: "throw someone under the bus", Sentence: "He threw his teammate under the bus.", Correct: "blame someone to save yourself", Wrong: [3]string{"praise someone publicly", "help someone", "ignore someone"}},
	{Term: "break even", Sentence: "We broke even on the event.", Correct: "no profit and no loss", Wrong: [3]string{"made a lot of money", "lost everything", "forgot to pay"}},
	{Term: "get wind of", Sentence: "She got wind of the new policy.", Correct: "hear about (often unofficially)", Wrong: [3]string{"forget about", "argue about", "write about"}},
	{Term: "in over your head", Sentence: "I'm in over my head with this project.", Correct: "it's too difficult for me", Wrong: [3]string{"it's too easy", "it's boring", "it's illegal"}},
	{Term: "keep a low profile", Sentence: "After the mistake, he kept a low profile.", Correct: "avoid attention", Wrong: [3]string{"show off", "travel a lot", "work faster"}},
	{Term: "make a fuss", Sentence: "Don't make a fuss. It's a small issue.", Correct: "complain too much", Wrong: [3]string{"solve it quickly", "laugh loudly", "pay extra"}},
	{Term: "take a hit", Sentence: "Sales took a hit this month.", Correct: "decreased / were damaged", Wrong: [3]string{"increased", "stayed the same", "disappeared completely"}},
	{Term: "put all your eggs in one basket", Sentence: "Don't put all your eggs in one basket with investments.", Correct: "depend on only one option", Wrong: [3]string{"save money", "work too slowly", "change your mind"}},
	{Term: "throw money down the drain", Sentence: "Buying that was throwing money down the drain.", Correct: "wasting money", Wrong: [3]string{"saving money", "earning money", "borrowing money"}},
	{Term: "get your hands dirty", Sentence: "He's not afraid to get his hands dirty.", Correct: "do hard or practical work", Wrong: [3]string{"avoid work", "commit a crime", "get sick easily"}},
	{Term: "keep your head above water", Sentence: "I'm just trying to keep my head above water.", Correct: "survive/manage with difficulty", Wrong: [3]string{"be very successful", "quit immediately", "celebrate"}},
	{Term: "ahead of the curve", Sentence: "Their tech is ahead of the curve.", Correct: "more advanced than others", Wrong: [3]string{"outdated", "illegal", "unpopular"}},
	{Term: "add fuel to the fire", Sentence: "His comment added fuel to the fire.", Correct: "made the situation worse", Wrong: [3]string{"calmed things down", "ended the problem", "changed the topic"}},
	{Term: "have a lot on your plate", Sentence: "I can't help because I have a lot on my plate.", Correct: "have many responsibilities", Wrong: [3]string{"be very hungry", "be bored", "be very rich"}},
	{Term: "get the ball rolling", Sentence: "Let's get the ball rolling.", Correct: "start the process", Wrong: [3]string{"stop everything", "delay", "argue"}},
	{Term: "go down in flames", Sentence: "The deal went down in flames.", Correct: "failed badly", Wrong: [3]string{"succeeded easily", "was postponed", "was kept secret"}},
	{Term: "hit a snag", Sentence: "We hit a snag with the payment system.", Correct: "face an unexpected problem", Wrong: [3]string{"finish early", "get praise", "change jobs"}},
	{Term: "have second thoughts", Sentence: "I'm having second thoughts about buying it.", Correct: "doubting the decision", Wrong: [3]string{"feeling sure", "feeling sick", "feeling proud"}},
	{Term: "out of your comfort zone", Sentence: "Public speaking is out of my comfort zone.", Correct: "unfamiliar and challenging", Wrong: [3]string{"very relaxing", "very boring", "very expensive"}},
	{Term: "keep something in mind", Sentence: "Keep in mind that the deadline is Friday.", Correct: "remember/consider", Wrong: [3]string{"forget", "deny", "celebrate"}},
	{Term: "on short notice", Sentence: "Sorry for the meeting on short notice.", Correct: "with little warning time", Wrong: [3]string{"with a long plan", "very late", "in private"}},
	{Term: "rule of thumb", Sentence: "As a rule of thumb, save 10% of your income.", Correct: "a general practical guideline", Wrong: [3]string{"a strict law", "a random guess", "a personal secret"}},
	{Term: "get something straight", Sentence: "Let's get one thing straight.", Correct: "clarify", Wrong: [3]string{"celebrate", "hide it", "forget it"}},
	{Term: "cut someone some slack", Sentence: "Cut her some slack. She's new.", Correct: "be less critical", Wrong: [3]string{"be stricter", "ignore completely", "fire her"}},
	{Term: "go back and forth", Sentence: "We went back and forth for an hour.", Correct: "argue/discuss repeatedly", Wrong: [3]string{"agree quickly", "stay silent", "work alone"}},
	{Term: "get your priorities straight", Sentence: "You need to get your priorities straight.", Correct: "focus on what matters most", Wrong: [3]string{"work faster", "sleep more", "travel less"}},
	{Term: "a wake-up call", Sentence: "That accident was a wake-up call.", Correct: "a warning that forces you to take action", Wrong: [3]string{"a celebration", "a small joke", "a lucky sign"}},
	{Term: "the big picture", Sentence: "Don't focus on details. Look at the big picture.", Correct: "the overall situation", Wrong: [3]string{"a photo", "a small problem", "a secret plan"}},
	{Term: "on the right track", Sentence: "You're on the right track with this essay.", Correct: "moving toward success", Wrong: [3]string{"completely wrong", "finished already", "being rude"}},
	{Term: "throw a fit", Sentence: "He threw a fit when he lost.", Correct: "have an angry outburst", Wrong: [3]string{"laugh quietly", "leave politely", "fall asleep"}},
	{Term: "cross that bridge when we come to it", Sentence: "Let's cross that bridge when we come to it.", Correct: "deal with it later if it happens", Wrong: [3]string{"solve it now", "ignore forever", "avoid responsibility"}},
	{Term: "bite off more than you can chew", Sentence: "I bit off more than I can chew this semester.", Correct: "take on too much", Wrong: [3]string{"do too little", "be lazy", "be very lucky"}},
	{Term: "go out of your way", Sentence: "Thanks for going out of your way to help.", Correct: "make extra effort", Wrong: [3]string{"refuse help", "leave early", "delay on purpose"}},
	{Term: "get your wires crossed", Sentence: "We got our wires crossed about the time.", Correct: "miscommunicate", Wrong: [3]string{"agree perfectly", "cancel quickly", "forget a name"}},
	{Term: "keep the peace", Sentence: "She tried to keep the peace in the group.", Correct: "prevent conflict", Wrong: [3]string{"start conflict", "win a debate", "avoid work"}},
	{Term: "take someone's word for it", Sentence: "I'll take your word for it.", Correct: "believe you without proof", Wrong: [3]string{"argue with you", "ignore you", "test you"}},
	{Term: "make a comeback", Sentence: "After the injury, she made a comeback.", Correct: "return to success", Wrong: [3]string{"move abroad", "quit forever", "lose interest"}},
}

var PhrasalVerbs = []ChoiceEntry{
	{Term: "carry out", Sentence: "The researchers carried out a study on sleep habits.", Correct: "perform (a task or study)", Wrong: [3]string{"cancel", "explain", "hide"}},
	{Term: "break down", Sentence: "The report breaks down the data into categories.", Correct: "divide into smaller parts", Wrong: [3]string{"increase quickly", "remove completely", "forget"}},
	{Term: "draw on", Sentence: "The writer draws on previous research.", Correct: "use as a source", Wrong: [3]string{"argue against", "copy by hand", "laugh at"}},
	{Term: "set out to", Sentence: "This essay sets out to explain the causes of climate change.", Correct: "aim to do", Wrong: [3]string{"refuse to do", "forget to do", "be forced to do"}},
	{Term: "take into account", Sentence: "Age and experience must be taken into account.", Correct: "consider", Wrong: [3]string{"ignore", "repeat", "translate"}},
	{Term: "play a key role", Sentence: "Education plays a key role in social development.", Correct: "be very important", Wrong: [3]string{"be unnecessary", "be illegal", "be confusing"}},
	{Term: "point out", Sentence: "The teacher pointed out several mistakes.", Correct: "mention and draw attention to", Wrong: [3]string{"hide", "create", "celebrate"}},
	{Term: "figure out", Sentence: "I can't figure out how this works.", Correct: "understand/solve", Wrong: [3]string{"forget", "invent", "destroy"}},
	{Term: "find out", Sentence: "I found out the results this morning.", Correct: "discover/learn", Wrong: [3]string{"guess", "deny", "lose"}},
	{Term: "look after", Sentence: "Can you look after my dog this weekend?", Correct: "take care of", Wrong: [3]string{"search for", "argue with", "copy"}},
	{Term: "look for", Sentence: "I'm looking for my keys.", Correct: "try to find", Wrong: [3]string{"throw away", "repair", "describe"}},
	{Term: "look forward to", Sentence: "I'm looking forward to the holidays.", Correct: "feel excited about (future)", Wrong: [3]string{"be afraid of", "regret", "forget"}},
	{Term: "get along", Sentence: "Do you get along with your classmates?", Correct: "have a good relationship", Wrong: [3]string{"travel together", "compete", "avoid"}},
	{Term: "run into", Sentence: "I ran into my old teacher yesterday.", Correct: "meet unexpectedly", Wrong: [3]string{"call on the phone", "ignore", "invite"}},
	{Term: "put off", Sentence: "Let's put off the meeting until Friday.", Correct: "delay/postpone", Wrong: [3]string{"start", "cancel forever", "summarise"}},
	{Term: "turn down", Sentence: "She turned down the job offer.", Correct: "refuse", Wrong: [3]string{"accept", "forget", "write"}},
	{Term: "turn up", Sentence: "He turned up late to class.", Correct: "appear/arrive", Wrong: [3]string{"refuse", "sleep", "win"}},
	{Term: "pick up", Sentence: "Can you pick up some milk on the way home?", Correct: "collect/buy and bring", Wrong: [3]string{"throw away", "pay back", "explain"}},
	{Term: "drop off", Sentence: "I'll drop you off at the station.", Correct: "take someone somewhere and leave them there", Wrong: [3]string{"invite someone in", "meet someone", "argue with someone"}},
	{Term: "give up", Sentence: "He gave up after two attempts.", Correct: "stop trying", Wrong: [3]string{"start again", "win", "help"}},
	{Term: "keep up with", Sentence: "It's hard to keep up with the homework.", Correct: "not fall behind", Wrong: [3]string{"cancel", "copy", "laugh at"}},
	{Term: "catch up", Sentence: "I need to catch up on sleep.", Correct: "recover", Wrong: [3]string{"fall behind", "give away", "slow down"}},
	{Term: "calm down", Sentence: "Please calm down and listen.", Correct: "compose oneself", Wrong: [3]string{"become angry", "leave", "celebrate"}},
	{Term: "get rid of", Sentence: "We need to get rid of these old files.", Correct: "remove/throw away", Wrong: [3]string{"collect", "translate", "protect"}},
	{Term: "set up", Sentence: "They set up a new system for bookings.", Correct: "create/arrange", Wrong: [3]string{"destroy", "avoid", "delay"}},
	{Term: "take part in", Sentence: "Many students took part in the project.", Correct: "participate in", Wrong: [3]string{"refuse", "forget", "complain about"}},
	{Term: "come up with", Sentence: "She came up with a great idea.", Correct: "think of (an idea)", Wrong: [3]string{"delete", "repeat", "steal"}},
	{Term: "deal with", Sentence: "We need to deal with this problem now.", Correct: "handle", Wrong: [3]string{"ignore", "celebrate", "hide"}},
	{Term: "focus on", Sentence: "Focus on the main idea.", Correct: "concentrate on", Wrong: [3]string{"avoid", "copy", "forget"}},
	{Term: "make sure", Sentence: "Make sure you lock the door.", Correct: "check/ensure", Wrong: [3]string{"hope", "forget", "deny"}},
	{Term: "depend on", Sentence: "It depends on the weather.", Correct: "be decided by", Wrong: [3]string{"be impossible", "be guaranteed", "be funny"}},
	{Term: "result in", Sentence: "This can result in serious problems.", Correct: "lead to", Wrong: [3]string{"prevent", "replace", "describe"}},
	{Term: "lead to", Sentence: "Smoking can lead to health issues.", Correct: "cause", Wrong: [3]string{"solve", "ignore", "decorate"}},
	{Term: "agree on", Sentence: "They agreed on a new plan.", Correct: "reach the same decision", Wrong: [3]string{"argue", "forget", "hide"}},
	{Term: "point to", Sentence: "The evidence points to a clear trend.", Correct: "indicate/suggest", Wrong: [3]string{"hide", "cancel", "laugh"}},
	{Term: "refer to", Sentence: "The report refers to several earlier studies.", Correct: "mention", Wrong: [3]string{"ignore", "destroy", "celebrate"}},
	{Term: "consist of", Sentence: "The course consists of five modules.", Correct: "be made up of", Wrong: [3]string{"remove", "delay", "explain"}},
	{Term: "be based on", Sentence: "The film is based on a true story.", Correct: "use as the foundation", Wrong: [3]string{"be against", "be unrelated to", "be shorter than"}},
	{Term: "take place", Sentence: "The event will take place on Saturday.", Correct: "happen", Wrong: [3]string{"be cancelled", "be written", "be paid"}},
	{Term: "hand in", Sentence: "Please hand in your assignment by 3 pm.", Correct: "submit", Wrong: [3]string{"copy", "lose", "explain"}},
	{Term: "fill out", Sentence: "Fill out this form, please.", Correct: "complete (a form)", Wrong: [3]string{"throw away", "translate", "cancel"}},
	{Term: "sign up for", Sentence: "I signed up for a coding course.", Correct: "register for", Wrong: [3]string{"refuse", "teach", "postpone"}},
	{Term: "show up", Sentence: "Only five people showed up.", Correct: "arrive/appear", Wrong: [3]string{"refuse", "sleep", "cancel"}},
	{Term: "work out", Sentence: "We need to work out a solution.", Correct: "develop/figure out", Wrong: [3]string{"avoid", "forget", "break"}},
	{Term: "sort out", Sentence: "Let's sort out the schedule.", Correct: "organise/resolve", Wrong: [3]string{"damage", "ignore", "celebrate"}},
	{Term: "bring up", Sentence: "She brought up an important point.", Correct: "mention", Wrong: [3]string{"hide", "forget", "cancel"}},
	{Term: "set aside", Sentence: "Set aside some time for revision.", Correct: "reserve", Wrong: [3]string{"waste", "cancel", "borrow"}},
	{Term: "follow up", Sentence: "I'll follow up with an email tomorrow.", Correct: "contact again to continue", Wrong: [3]string{"stop permanently", "argue", "celebrate"}},
	{Term: "go on", Sentence: "Please go on with your presentation.", Correct: "continue", Wrong: [3]string{"stop", "forget", "argue"}},
	{Term: "set off", Sentence: "We set off early in the morning.", Correct: "start a journey", Wrong: [3]string{"end a journey", "postpone", "forget"}},
	{Term: "put on", Sentence: "He put on his jacket.", Correct: "dress/wear", Wrong: [3]string{"remove", "buy", "lose"}},
	{Term: "take off", Sentence: "Please take off your shoes.", Correct: "remove", Wrong: [3]string{"repair", "buy", "wash"}},
	{Term: "get on", Sentence: "She got on the bus.", Correct: "enter (a vehicle)", Wrong: [3]string{"leave", "sleep", "pay"}},
	{Term: "get off", Sentence: "We got off at the next stop.", Correct: "leave (a vehicle)", Wrong: [3]string{"enter", "buy", "forget"}},
	{Term: "check in", Sentence: "We checked in at the hotel.", Correct: "register on arrival", Wrong: [3]string{"leave", "complain", "pay back"}},
	{Term: "check out", Sentence: "We checked out at 11 am.", Correct: "leave and pay at the end", Wrong: [3]string{"arrive", "sleep", "refuse"}},
	{Term: "look up", Sentence: "Look up the word in a dictionary.", Correct: "search for information", Wrong: [3]string{"erase", "guess", "hide"}},
	{Term: "bring about", Sentence: "The new policy brought about major changes.", Correct: "cause", Wrong: [3]string{"prevent", "copy", "forget"}},
	{Term: "rule out", Sentence: "We can't rule out delays.", Correct: "say something is impossible (exclude)", Wrong: [3]string{"confirm", "invite", "repeat"}},
	{Term: "pay attention", Sentence: "Pay attention to the instructions.", Correct: "listen/watch carefully", Wrong: [3]string{"ignore", "leave", "celebrate"}},
	{Term: "make progress", Sentence: "She is making progress in English.", Correct: "improve", Wrong: [3]string{"fail", "stop", "complain"}},
	{Term: "come across", Sentence: "I came across an interesting article.", Correct: "find by chance", Wrong: [3]string{"forget", "argue", "destroy"}},
	{Term: "take a break", Sentence: "Let's take a break for ten minutes.", Correct: "rest briefly", Wrong: [3]string{"work faster", "leave forever", "argue"}},
	{Term: "learn from", Sentence: "Try to learn from your mistakes.", Correct: "use experience to improve", Wrong: [3]string{"repeat the same", "ignore", "hide"}},
	{Term: "take advantage of", Sentence: "Take advantage of free practice materials.", Correct: "use an opportunity", Wrong: [3]string{"waste time", "refuse help", "hide"}},
	{Term: "keep track of", Sentence: "Keep track of your homework.", Correct: "monitor/record", Wrong: [3]string{"ignore", "forget", "hide"}},
	{Term: "stick to", Sentence: "Try to stick to your plan.", Correct: "follow consistently", Wrong: [3]string{"change daily", "forget", "cancel"}},
	{Term: "put together", Sentence: "She put together a presentation in one day.", Correct: "assemble/create", Wrong: [3]string{"destroy", "copy", "delay"}},
	{Term: "take over", Sentence: "The new manager took over last month.", Correct: "assume control", Wrong: [3]string{"quit", "refuse", "explain"}},
	{Term: "back up", Sentence: "Back up your files regularly.", Correct: "make a safety copy", Wrong: [3]string{"delete", "share publicly", "ignore"}},
	{Term: "log in", Sentence: "Log in with your school account.", Correct: "enter a system using credentials", Wrong: [3]string{"log out", "delete account", "send email"}},
	{Term: "sum up", Sentence: "To sum up, we need better planning.", Correct: "summarise", Wrong: [3]string{"add details", "deny", "argue"}},
	{Term: "phase out", Sentence: "They will phase out the old system.", Correct: "remove gradually", Wrong: [3]string{"add quickly", "repair", "celebrate"}},
	{Term: "keep in touch", Sentence: "We still keep in touch after graduation.", Correct: "stay in contact", Wrong: [3]string{"avoid contact", "argue", "compete"}},
	{Term: "pay off", Sentence: "All that practice paid off.", Correct: "produce good results", Wrong: [3]string{"fail badly", "be cancelled", "be stolen"}},
	{Term: "come up", Sentence: "Something urgent came up.", Correct: "happen unexpectedly", Wrong: [3]string{"be planned", "be cancelled", "be solved"}},
	{Term: "hold on", Sentence: "Hold on a second, please.", Correct: "wait", Wrong: [3]string{"run", "forget", "leave"}},
	{Term: "make up for", Sentence: "I'll make up for being late.", Correct: "compensate", Wrong: [3]string{"repeat", "deny", "ignore"}},
	{Term: "look into", Sentence: "We will look into the complaint.", Correct: "investigate", Wrong: [3]string{"celebrate", "ignore", "publish"}},
	{Term: "come to terms with", Sentence: "He came to terms with the decision.", Correct: "accept (a difficult situation)", Wrong: [3]string{"deny", "forget", "celebrate"}},
	{Term: "miss out on", Sentence: "Don't miss out on this opportunity.", Correct: "fail to experience/get", Wrong: [3]string{"get easily", "cancel", "repeat"}},
	{Term: "get used to", Sentence: "You'll get used to the routine.", Correct: "become accustomed to", Wrong: [3]string{"forget", "refuse", "change"}},
	{Term: "go through", Sentence: "Let's go through the instructions again.", Correct: "review step by step", Wrong: [3]string{"ignore", "destroy", "celebrate"}},
	{Term: "take care of", Sentence: "I'll take care of the emails.", Correct: "handle", Wrong: [3]string{"cancel", "hide", "translate"}},
	{Term: "work on", Sentence: "She is working on her pronunciation.", Correct: "try to improve", Wrong: [3]string{"avoid", "refuse", "forget"}},
	{Term: "keep up", Sentence: "Keep up the good work.", Correct: "continue at the same level", Wrong: [3]string{"stop", "deny", "hide"}},
	{Term: "fall behind", Sentence: "He fell behind in math.", Correct: "fail to keep up", Wrong: [3]string{"be ahead", "be finished", "be promoted"}},
	{Term: "catch on", Sentence: "She caught on quickly.", Correct: "understand/learn", Wrong: [3]string{"forget", "refuse", "delay"}},
	{Term: "hand out", Sentence: "The teacher handed out worksheets.", Correct: "distribute", Wrong: [3]string{"collect", "delete", "hide"}},
	{Term: "take turns", Sentence: "Take turns answering the questions.", Correct: "alternate", Wrong: [3]string{"compete", "stop", "copy"}},
	{Term: "put up with", Sentence: "I can't put up with the noise anymore.", Correct: "tolerate", Wrong: [3]string{"increase", "forget", "measure"}},
	{Term: "run out of", Sentence: "We ran out of milk this morning.", Correct: "have none left", Wrong: [3]string{"buy extra", "spill", "hide"}},
	{Term: "get by", Sentence: "On a student budget, you learn to get by.", Correct: "manage with what you have", Wrong: [3]string{"get promoted", "argue loudly", "travel abroad"}},
	{Term: "get over", Sentence: "It took her weeks to get over the flu.", Correct: "recover from", Wrong: [3]string{"catch", "explain", "postpone"}},
	{Term: "get away with", Sentence: "He thought he could get away with cheating.", Correct: "avoid punishment", Wrong: [3]string{"apologise immediately", "get permission", "improve skills"}},
	{Term: "look out", Sentence: "Look out! There's a car coming.", Correct: "be careful", Wrong: [3]string{"be quiet", "be proud", "be early"}},
	{Term: "look down on", Sentence: "It's wrong to look down on people.", Correct: "disrespect", Wrong: [3]string{"admire", "help", "copy"}},
	{Term: "look up to", Sentence: "Many students look up to their coach.", Correct: "admire", Wrong: [3]string{"ignore", "argue with", "compete with"}},
	{Term: "look over", Sentence: "Can you look over my essay?", Correct: "review", Wrong: [3]string{"throw away", "copy", "shout"}},
	{Term: "come down with", Sentence: "I came down with a cold.", Correct: "become ill with", Wrong: [3]string{"recover from", "argue about", "pay for"}},
	{Term: "come along", Sentence: "Come along. We're leaving now.", Correct: "go with", Wrong: [3]string{"stop", "forget", "hide from"}},
	{Term: "come in handy", Sentence: "These phrases will come in handy during the exam.", Correct: "be useful", Wrong: [3]string{"be harmful", "be expensive", "be illegal"}},
	{Term: "come up against", Sentence: "We came up against some serious problems.", Correct: "encounter", Wrong: [3]string{"avoid", "celebrate", "solve instantly"}},
	{Term: "go over", Sentence: "Let's go over the instructions again.", Correct: "review", Wrong: [3]string{"ignore", "cancel", "invent"}},
	{Term: "go off", Sentence: "The alarm went off at 6 a.m.", Correct: "start ringing", Wrong: [3]string{"stop working", "get repaired", "get lost"}},
	{Term: "go through with", Sentence: "She decided to go through with the plan.", Correct: "do it as planned", Wrong: [3]string{"cancel it", "forget it", "delay forever"}},
	{Term: "go back on", Sentence: "He went back on his promise.", Correct: "break a promise", Wrong: [3]string{"keep a promise", "explain a promise", "write a promise"}},
	{Term: "go ahead", Sentence: "Go ahead and start without me.", Correct: "proceed", Wrong: [3]string{"stop", "argue", "hide"}},
	{Term: "go for", Sentence: "I'll go for the cheaper option.", Correct: "choose", Wrong: [3]string{"destroy", "forget", "wait"}},
	{Term: "take on", Sentence: "She took on more work than she should.", Correct: "accept responsibility for", Wrong: [3]string{"refuse", "finish early", "complain quietly"}},
	{Term: "take in", Sentence: "I couldn't take in all the information.", Correct: "understand/absorb", Wrong: [3]string{"throw away", "write down", "forget"}},
	{Term: "take back", Sentence: "I take back what I said.", Correct: "admit it was wrong and withdraw it", Wrong: [3]string{"repeat it", "prove it", "shout it"}},
	{Term: "take up", Sentence: "He took up running last year.", Correct: "start a new hobby/activity", Wrong: [3]string{"stop", "refuse", "forget"}},
	{Term: "put away", Sentence: "Put away your phone during class.", Correct: "store/tidy", Wrong: [3]string{"buy", "borrow", "translate"}},
	{Term: "put out", Sentence: "Firefighters put out the fire quickly.", Correct: "extinguish", Wrong: [3]string{"start", "increase", "decorate"}},
	{Term: "put down", Sentence: "Please don't put others down.", Correct: "insult/criticise", Wrong: [3]string{"praise", "teach", "invite"}},
	{Term: "turn out", Sentence: "It turned out better than expected.", Correct: "end up / happen in the end", Wrong: [3]string{"start", "disappear", "be cancelled"}},
	{Term: "turn into", Sentence: "The discussion turned into an argument.", Correct: "change into", Wrong: [3]string{"end", "repeat", "improve"}},
	{Term: "turn on", Sentence: "Turn on the lights, please.", Correct: "switch on", Wrong: [3]string{"switch off", "break", "hide"}},
	{Term: "turn to", Sentence: "She turned to her friend for advice.", Correct: "ask for help", Wrong: [3]string{"avoid", "punish", "compete"}},
	{Term: "break out", Sentence: "A fire broke out in the kitchen.", Correct: "start suddenly (bad event)", Wrong: [3]string{"end suddenly", "be planned", "be repaired"}},
	{Term: "break into", Sentence: "Someone broke into the house.", Correct: "enter by force illegally", Wrong: [3]string{"enter politely", "leave quietly", "decorate"}},
	{Term: "break up", Sentence: "They broke up after two years.", Correct: "end a relationship", Wrong: [3]string{"get engaged", "become friends", "move in"}},
	{Term: "break off", Sentence: "They broke off the negotiations.", Correct: "end suddenly", Wrong: [3]string{"start", "continue", "agree"}},
	{Term: "call off", Sentence: "They called off the match because of rain.", Correct: "cancel", Wrong: [3]string{"start", "delay", "announce"}},
	{Term: "call back", Sentence: "I'll call you back in five minutes.", Correct: "return a phone call", Wrong: [3]string{"ignore", "text only", "complain"}},
	{Term: "call on", Sentence: "The teacher called on me to answer.", Correct: "choose someone to speak", Wrong: [3]string{"ignore", "reward", "copy"}},
	{Term: "call for", Sentence: "This situation calls for quick action.", Correct: "require", Wrong: [3]string{"prevent", "cancel", "decorate"}},
	{Term: "back down", Sentence: "He refused to back down.", Correct: "stop defending your position", Wrong: [3]string{"agree quickly", "shout louder", "leave silently"}},
	{Term: "back out", Sentence: "She backed out of the deal.", Correct: "withdraw", Wrong: [3]string{"sign", "celebrate", "repeat"}},
	{Term: "hold back", Sentence: "Don't hold back. Tell us your opinion.", Correct: "keep from expressing", Wrong: [3]string{"invent", "repeat", "celebrate"}},
	{Term: "hold off", Sentence: "Let's hold off on making a decision.", Correct: "delay", Wrong: [3]string{"rush", "cancel forever", "copy"}},
	{Term: "hold up", Sentence: "Sorry, traffic held me up.", Correct: "delay", Wrong: [3]string{"speed up", "forget", "help"}},
}
